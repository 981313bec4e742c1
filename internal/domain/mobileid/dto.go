package mobileid

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type IssueCardRequest struct {
	UserID string `json:"user_id"`
}

func (r *IssueCardRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CardResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	CardNumber    string  `json:"card_number"`
	PhotoURL      *string `json:"photo_url"`
	IssuedAt      string  `json:"issued_at"`
	ExpiresAt     string  `json:"expires_at"`
	IsRevoked     bool    `json:"is_revoked"`
	UserName      *string `json:"user_name,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Rank          *string `json:"rank,omitempty"`
}

func ToCardResponse(c *Card) CardResponse {
	return CardResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		CardNumber:    c.CardNumber,
		PhotoURL:      c.PhotoURL,
		IssuedAt:      c.IssuedAt.UTC().Format("2006-01-02"),
		ExpiresAt:     c.ExpiresAt.UTC().Format("2006-01-02"),
		IsRevoked:     c.IsRevoked,
		UserName:      c.UserName,
		ServiceNumber: c.ServiceNumber,
		Rank:          c.Rank,
	}
}
