package notice

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type CreateNoticeRequest struct {
	BatchID *string `json:"batch_id,omitempty"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	Pinned  bool    `json:"pinned"`
}

func (r *CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNoticeRequest struct {
	ID     string  `json:"-"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	Pinned *bool   `json:"pinned,omitempty"`
}

type NoticeResponse struct {
	ID         string  `json:"id"`
	BatchID    *string `json:"batch_id,omitempty"`
	AuthorID   string  `json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Pinned     bool    `json:"pinned"`
	CreatedAt  string  `json:"created_at"`
}

type ListNoticeResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Notices    []NoticeResponse `json:"notices"`
}

func ToNoticeResponse(n Notice) NoticeResponse {
	return NoticeResponse{
		ID:         n.ID,
		BatchID:    n.BatchID,
		AuthorID:   n.AuthorID,
		AuthorName: n.AuthorName,
		Title:      n.Title,
		Body:       n.Body,
		Pinned:     n.Pinned,
		CreatedAt:  n.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}
