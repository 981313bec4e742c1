package survey

import (
	"context"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
)

type Service interface {
	CreateSurvey(ctx context.Context, req survey.CreateSurveyRequest) (survey.SurveyResponse, error)
	GetSurvey(ctx context.Context, id string) (survey.SurveyResponse, error)
	ListSurveys(ctx context.Context, openOnly bool) ([]survey.SurveyResponse, error)
	CloseSurvey(ctx context.Context, id string) error
	DeleteSurvey(ctx context.Context, id string) error

	// Answer records the user's choice; answering again replaces it.
	Answer(ctx context.Context, userID string, req survey.AnswerRequest) error
	Tally(ctx context.Context, surveyID string) (survey.TallyResponse, error)
	MyAnswer(ctx context.Context, surveyID, userID string) (survey.Response, error)
}

type serviceImpl struct {
	survey.SurveyRepository
	survey.ResponseRepository

	now func() time.Time
}

func NewService(surveyRepo survey.SurveyRepository, responseRepo survey.ResponseRepository) Service {
	return &serviceImpl{
		SurveyRepository:   surveyRepo,
		ResponseRepository: responseRepo,
		now:                time.Now,
	}
}

// CreateSurvey implements Service.
func (s *serviceImpl) CreateSurvey(ctx context.Context, req survey.CreateSurveyRequest) (survey.SurveyResponse, error) {
	if err := req.Validate(); err != nil {
		return survey.SurveyResponse{}, err
	}

	opens, _ := time.Parse(time.RFC3339, req.OpensAt)
	closes, _ := time.Parse(time.RFC3339, req.ClosesAt)

	created, err := s.SurveyRepository.Create(ctx, survey.Survey{
		Title:    req.Title,
		Question: req.Question,
		Options:  req.Options,
		OpensAt:  opens.UTC(),
		ClosesAt: closes.UTC(),
	})
	if err != nil {
		return survey.SurveyResponse{}, err
	}
	return survey.ToSurveyResponse(created), nil
}

// GetSurvey implements Service.
func (s *serviceImpl) GetSurvey(ctx context.Context, id string) (survey.SurveyResponse, error) {
	sv, err := s.SurveyRepository.GetByID(ctx, id)
	if err != nil {
		return survey.SurveyResponse{}, err
	}
	return survey.ToSurveyResponse(sv), nil
}

// ListSurveys implements Service.
func (s *serviceImpl) ListSurveys(ctx context.Context, openOnly bool) ([]survey.SurveyResponse, error) {
	surveys, err := s.SurveyRepository.List(ctx, openOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]survey.SurveyResponse, 0, len(surveys))
	for _, sv := range surveys {
		responses = append(responses, survey.ToSurveyResponse(sv))
	}
	return responses, nil
}

// CloseSurvey implements Service.
func (s *serviceImpl) CloseSurvey(ctx context.Context, id string) error {
	sv, err := s.SurveyRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sv.IsClosed {
		return nil
	}
	sv.IsClosed = true
	return s.SurveyRepository.Update(ctx, sv)
}

// DeleteSurvey implements Service.
func (s *serviceImpl) DeleteSurvey(ctx context.Context, id string) error {
	return s.SurveyRepository.Delete(ctx, id)
}

// Answer implements Service.
func (s *serviceImpl) Answer(ctx context.Context, userID string, req survey.AnswerRequest) error {
	sv, err := s.SurveyRepository.GetByID(ctx, req.SurveyID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	if sv.IsClosed || now.Before(sv.OpensAt) || !now.Before(sv.ClosesAt) {
		return survey.ErrSurveyClosed
	}
	if req.Choice < 0 || req.Choice >= len(sv.Options) {
		return survey.ErrInvalidChoice
	}

	_, err = s.ResponseRepository.Upsert(ctx, survey.Response{
		SurveyID: req.SurveyID,
		UserID:   userID,
		Choice:   req.Choice,
	})
	return err
}

// Tally implements Service.
func (s *serviceImpl) Tally(ctx context.Context, surveyID string) (survey.TallyResponse, error) {
	if _, err := s.SurveyRepository.GetByID(ctx, surveyID); err != nil {
		return survey.TallyResponse{}, err
	}

	counts, err := s.ResponseRepository.Tally(ctx, surveyID)
	if err != nil {
		return survey.TallyResponse{}, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return survey.TallyResponse{
		SurveyID: surveyID,
		Counts:   counts,
		Total:    total,
	}, nil
}

// MyAnswer implements Service.
func (s *serviceImpl) MyAnswer(ctx context.Context, surveyID, userID string) (survey.Response, error) {
	return s.ResponseRepository.GetByUser(ctx, surveyID, userID)
}
