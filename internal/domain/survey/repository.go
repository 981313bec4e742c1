package survey

import "context"

type SurveyRepository interface {
	Create(ctx context.Context, s Survey) (Survey, error)
	GetByID(ctx context.Context, id string) (Survey, error)
	List(ctx context.Context, openOnly bool) ([]Survey, error)
	Update(ctx context.Context, s Survey) error
	Delete(ctx context.Context, id string) error
	// CloseExpired marks surveys whose closes_at has passed; returns how
	// many were closed.
	CloseExpired(ctx context.Context) (int64, error)
}

type ResponseRepository interface {
	// Upsert saves the answer keyed (survey_id, user_id).
	Upsert(ctx context.Context, r Response) (Response, error)
	Tally(ctx context.Context, surveyID string) (map[int]int64, error)
	GetByUser(ctx context.Context, surveyID, userID string) (Response, error)
}
