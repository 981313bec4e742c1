package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const surveyColumns = `id, title, question, options, opens_at, closes_at, is_closed, created_at, updated_at`

type surveyRepositoryImpl struct {
	db *database.DB
}

func NewSurveyRepository(db *database.DB) survey.SurveyRepository {
	return &surveyRepositoryImpl{db: db}
}

func scanSurvey(row pgx.Row) (survey.Survey, error) {
	var s survey.Survey
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Question,
		&s.Options,
		&s.OpensAt,
		&s.ClosesAt,
		&s.IsClosed,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return survey.Survey{}, survey.ErrSurveyNotFound
		}
		return survey.Survey{}, err
	}
	return s, nil
}

// Create implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) Create(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO surveys (title, question, options, opens_at, closes_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + surveyColumns

	return scanSurvey(q.QueryRow(ctx, query, s.Title, s.Question, s.Options, s.OpensAt, s.ClosesAt))
}

// GetByID implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) GetByID(ctx context.Context, id string) (survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1`
	return scanSurvey(q.QueryRow(ctx, query, id))
}

// List implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) List(ctx context.Context, openOnly bool) ([]survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + surveyColumns + ` FROM surveys`
	if openOnly {
		query += ` WHERE is_closed = FALSE AND opens_at <= NOW() AND closes_at > NOW()`
	}
	query += ` ORDER BY closes_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []survey.Survey
	for rows.Next() {
		s, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, s)
	}

	return surveys, rows.Err()
}

// Update implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) Update(ctx context.Context, s survey.Survey) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE surveys
		SET title = $1, question = $2, options = $3, opens_at = $4, closes_at = $5, is_closed = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query, s.Title, s.Question, s.Options, s.OpensAt, s.ClosesAt, s.IsClosed, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return survey.ErrSurveyNotFound
	}

	return nil
}

// Delete implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM surveys WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return survey.ErrSurveyNotFound
	}

	return nil
}

// CloseExpired implements survey.SurveyRepository.
func (r *surveyRepositoryImpl) CloseExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE surveys SET is_closed = TRUE, updated_at = NOW() WHERE is_closed = FALSE AND closes_at <= NOW()`)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

type surveyResponseRepositoryImpl struct {
	db *database.DB
}

func NewSurveyResponseRepository(db *database.DB) survey.ResponseRepository {
	return &surveyResponseRepositoryImpl{db: db}
}

// Upsert implements survey.ResponseRepository. Answering again replaces
// the previous choice.
func (r *surveyResponseRepositoryImpl) Upsert(ctx context.Context, resp survey.Response) (survey.Response, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO survey_responses (survey_id, user_id, choice)
		VALUES ($1, $2, $3)
		ON CONFLICT (survey_id, user_id) DO UPDATE
		SET choice = EXCLUDED.choice,
			updated_at = NOW()
		RETURNING id, survey_id, user_id, choice, created_at, updated_at
	`

	var saved survey.Response
	err := q.QueryRow(ctx, query, resp.SurveyID, resp.UserID, resp.Choice).Scan(
		&saved.ID,
		&saved.SurveyID,
		&saved.UserID,
		&saved.Choice,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return survey.Response{}, err
	}

	return saved, nil
}

// Tally implements survey.ResponseRepository.
func (r *surveyResponseRepositoryImpl) Tally(ctx context.Context, surveyID string) (map[int]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT choice, COUNT(*) FROM survey_responses WHERE survey_id = $1 GROUP BY choice`, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tally := make(map[int]int64)
	for rows.Next() {
		var choice int
		var count int64
		if err := rows.Scan(&choice, &count); err != nil {
			return nil, err
		}
		tally[choice] = count
	}

	return tally, rows.Err()
}

// GetByUser implements survey.ResponseRepository.
func (r *surveyResponseRepositoryImpl) GetByUser(ctx context.Context, surveyID, userID string) (survey.Response, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, survey_id, user_id, choice, created_at, updated_at FROM survey_responses WHERE survey_id = $1 AND user_id = $2`

	var resp survey.Response
	err := q.QueryRow(ctx, query, surveyID, userID).Scan(
		&resp.ID,
		&resp.SurveyID,
		&resp.UserID,
		&resp.Choice,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return survey.Response{}, survey.ErrSurveyNotFound
		}
		return survey.Response{}, err
	}

	return resp, nil
}
