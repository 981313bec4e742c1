package survey

import "time"

type Survey struct {
	ID        string
	Title     string
	Question  string
	Options   []string
	OpensAt   time.Time
	ClosesAt  time.Time
	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response is one user's answer, keyed (survey_id, user_id); answering
// again replaces the previous choice.
type Response struct {
	ID        string
	SurveyID  string
	UserID    string
	Choice    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
