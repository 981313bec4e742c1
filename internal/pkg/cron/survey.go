package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
)

type SurveyJobs struct {
	surveyRepo survey.SurveyRepository
}

func NewSurveyJobs(surveyRepo survey.SurveyRepository) *SurveyJobs {
	return &SurveyJobs{surveyRepo: surveyRepo}
}

func (j *SurveyJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_expired_surveys", 10*time.Minute, j.CloseExpiredSurveys)
}

// CloseExpiredSurveys marks surveys whose closing time has passed as closed
// so they stop accepting responses.
func (j *SurveyJobs) CloseExpiredSurveys(ctx context.Context) error {
	count, err := j.surveyRepo.CloseExpired(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Cron: Closed expired surveys", "count", count)
	}
	return nil
}
