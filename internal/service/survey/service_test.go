package survey

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
)

type memorySurveyRepo struct {
	surveys map[string]survey.Survey
}

func (r *memorySurveyRepo) Create(_ context.Context, s survey.Survey) (survey.Survey, error) {
	s.ID = "sv-" + s.Title
	r.surveys[s.ID] = s
	return s, nil
}

func (r *memorySurveyRepo) GetByID(_ context.Context, id string) (survey.Survey, error) {
	s, ok := r.surveys[id]
	if !ok {
		return survey.Survey{}, survey.ErrSurveyNotFound
	}
	return s, nil
}

func (r *memorySurveyRepo) List(_ context.Context, openOnly bool) ([]survey.Survey, error) {
	var out []survey.Survey
	for _, s := range r.surveys {
		if openOnly && s.IsClosed {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memorySurveyRepo) Update(_ context.Context, s survey.Survey) error {
	if _, ok := r.surveys[s.ID]; !ok {
		return survey.ErrSurveyNotFound
	}
	r.surveys[s.ID] = s
	return nil
}

func (r *memorySurveyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.surveys[id]; !ok {
		return survey.ErrSurveyNotFound
	}
	delete(r.surveys, id)
	return nil
}

func (r *memorySurveyRepo) CloseExpired(_ context.Context) (int64, error) {
	var n int64
	for id, s := range r.surveys {
		if !s.IsClosed && time.Now().After(s.ClosesAt) {
			s.IsClosed = true
			r.surveys[id] = s
			n++
		}
	}
	return n, nil
}

type memoryResponseRepo struct {
	responses map[string]survey.Response // keyed surveyID+"/"+userID
}

func (r *memoryResponseRepo) Upsert(_ context.Context, resp survey.Response) (survey.Response, error) {
	r.responses[resp.SurveyID+"/"+resp.UserID] = resp
	return resp, nil
}

func (r *memoryResponseRepo) Tally(_ context.Context, surveyID string) (map[int]int64, error) {
	counts := make(map[int]int64)
	for _, resp := range r.responses {
		if resp.SurveyID == surveyID {
			counts[resp.Choice]++
		}
	}
	return counts, nil
}

func (r *memoryResponseRepo) GetByUser(_ context.Context, surveyID, userID string) (survey.Response, error) {
	resp, ok := r.responses[surveyID+"/"+userID]
	if !ok {
		return survey.Response{}, survey.ErrSurveyNotFound
	}
	return resp, nil
}

func newTestService(t *testing.T, now time.Time) (Service, *memorySurveyRepo, *memoryResponseRepo) {
	t.Helper()
	surveyRepo := &memorySurveyRepo{surveys: make(map[string]survey.Survey)}
	responseRepo := &memoryResponseRepo{responses: make(map[string]survey.Response)}
	svc := NewService(surveyRepo, responseRepo)
	svc.(*serviceImpl).now = func() time.Time { return now }
	return svc, surveyRepo, responseRepo
}

func seedSurvey(repo *memorySurveyRepo, id string, opens, closes time.Time, closed bool) {
	repo.surveys[id] = survey.Survey{
		ID:       id,
		Title:    "meal preference",
		Question: "which lunch option?",
		Options:  []string{"bibimbap", "bulgogi", "curry"},
		OpensAt:  opens,
		ClosesAt: closes,
		IsClosed: closed,
	}
}

func TestAnswer(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("records and replaces the choice", func(t *testing.T) {
		svc, repo, responses := newTestService(t, now)
		seedSurvey(repo, "sv1", now.Add(-time.Hour), now.Add(time.Hour), false)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 1})
		require.NoError(t, err)

		err = svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 2})
		require.NoError(t, err)

		got, err := responses.GetByUser(context.Background(), "sv1", "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Choice)
	})

	t.Run("rejects out-of-range choice", func(t *testing.T) {
		svc, repo, _ := newTestService(t, now)
		seedSurvey(repo, "sv1", now.Add(-time.Hour), now.Add(time.Hour), false)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 3})
		assert.ErrorIs(t, err, survey.ErrInvalidChoice)

		err = svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: -1})
		assert.ErrorIs(t, err, survey.ErrInvalidChoice)
	})

	t.Run("rejects before the survey opens", func(t *testing.T) {
		svc, repo, _ := newTestService(t, now)
		seedSurvey(repo, "sv1", now.Add(time.Hour), now.Add(2*time.Hour), false)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 0})
		assert.ErrorIs(t, err, survey.ErrSurveyClosed)
	})

	t.Run("rejects at and after the closing instant", func(t *testing.T) {
		svc, repo, _ := newTestService(t, now)
		seedSurvey(repo, "sv1", now.Add(-2*time.Hour), now, false)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 0})
		assert.ErrorIs(t, err, survey.ErrSurveyClosed)
	})

	t.Run("rejects a manually closed survey", func(t *testing.T) {
		svc, repo, _ := newTestService(t, now)
		seedSurvey(repo, "sv1", now.Add(-time.Hour), now.Add(time.Hour), true)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "sv1", Choice: 0})
		assert.ErrorIs(t, err, survey.ErrSurveyClosed)
	})

	t.Run("unknown survey", func(t *testing.T) {
		svc, _, _ := newTestService(t, now)

		err := svc.Answer(context.Background(), "u1", survey.AnswerRequest{SurveyID: "missing", Choice: 0})
		assert.ErrorIs(t, err, survey.ErrSurveyNotFound)
	})
}

func TestTally(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(t, now)
	seedSurvey(repo, "sv1", now.Add(-time.Hour), now.Add(time.Hour), false)

	for i, userID := range []string{"u1", "u2", "u3"} {
		choice := 0
		if i > 0 {
			choice = 1
		}
		require.NoError(t, svc.Answer(context.Background(), userID, survey.AnswerRequest{SurveyID: "sv1", Choice: choice}))
	}

	tally, err := svc.Tally(context.Background(), "sv1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), tally.Total)
	assert.Equal(t, int64(1), tally.Counts[0])
	assert.Equal(t, int64(2), tally.Counts[1])
}

func TestCloseSurvey(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(t, now)
	seedSurvey(repo, "sv1", now.Add(-time.Hour), now.Add(time.Hour), false)

	require.NoError(t, svc.CloseSurvey(context.Background(), "sv1"))
	assert.True(t, repo.surveys["sv1"].IsClosed)

	// closing twice is a no-op
	require.NoError(t, svc.CloseSurvey(context.Background(), "sv1"))
}
