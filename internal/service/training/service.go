package training

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/timeutil"
)

type Service interface {
	CreateTraining(ctx context.Context, req training.CreateTrainingRequest) (training.TrainingResponse, error)
	GetTraining(ctx context.Context, id string) (training.TrainingResponse, error)
	ListByBatch(ctx context.Context, batchID string) ([]training.TrainingResponse, error)
	UpdateTraining(ctx context.Context, req training.UpdateTrainingRequest) (training.TrainingResponse, error)
	DeleteTraining(ctx context.Context, id string) error

	SetOverrideRate(ctx context.Context, req training.SetOverrideRateRequest) (training.CompensationResponse, error)
	BatchTotal(ctx context.Context, batchID string) (training.BatchTotalResponse, error)

	// ResyncCompensation recomputes every compensation row belonging to an
	// active batch. Called from cron; overrides are preserved.
	ResyncCompensation(ctx context.Context) (int, error)
}

type serviceImpl struct {
	training.TrainingRepository
	training.CompensationRepository
	batchRepo batch.BatchRepository
}

func NewService(
	trainingRepo training.TrainingRepository,
	compensationRepo training.CompensationRepository,
	batchRepo batch.BatchRepository,
) Service {
	return &serviceImpl{
		TrainingRepository:     trainingRepo,
		CompensationRepository: compensationRepo,
		batchRepo:              batchRepo,
	}
}

// syncCompensation derives and upserts the compensation row for t. A
// training with missing times credits zero hours and pays nothing.
func (s *serviceImpl) syncCompensation(ctx context.Context, t training.Training) (training.Compensation, error) {
	hours := 0.0
	if t.StartTime != nil && t.EndTime != nil {
		var err error
		hours, err = TrainingHours(*t.StartTime, *t.EndTime)
		if err != nil {
			return training.Compensation{}, fmt.Errorf("derive training hours: %w", err)
		}
	}

	isWeekend := timeutil.IsWeekend(t.Date)
	comp := training.Compensation{
		TrainingID:    t.ID,
		TrainingHours: hours,
		IsWeekend:     isWeekend,
		DailyRate:     DailyRate(hours, isWeekend),
	}

	return s.CompensationRepository.Upsert(ctx, comp)
}

// CreateTraining implements Service. The compensation row is written in
// the same call so the two can never drift apart.
func (s *serviceImpl) CreateTraining(ctx context.Context, req training.CreateTrainingRequest) (training.TrainingResponse, error) {
	if err := req.Validate(); err != nil {
		return training.TrainingResponse{}, err
	}

	if _, err := s.batchRepo.GetByID(ctx, req.BatchID); err != nil {
		return training.TrainingResponse{}, err
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return training.TrainingResponse{}, err
	}

	counts := true
	if req.CountsTowardHours != nil {
		counts = *req.CountsTowardHours
	}

	created, err := s.TrainingRepository.Create(ctx, training.Training{
		BatchID:           req.BatchID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Title:             req.Title,
		CountsTowardHours: counts,
	})
	if err != nil {
		return training.TrainingResponse{}, fmt.Errorf("create training: %w", err)
	}

	comp, err := s.syncCompensation(ctx, created)
	if err != nil {
		return training.TrainingResponse{}, err
	}

	resp := training.ToTrainingResponse(created)
	compResp := training.ToCompensationResponse(comp)
	resp.Compensation = &compResp
	return resp, nil
}

// GetTraining implements Service.
func (s *serviceImpl) GetTraining(ctx context.Context, id string) (training.TrainingResponse, error) {
	t, err := s.TrainingRepository.GetByID(ctx, id)
	if err != nil {
		return training.TrainingResponse{}, err
	}

	resp := training.ToTrainingResponse(t)
	if comp, err := s.CompensationRepository.GetByTraining(ctx, id); err == nil {
		compResp := training.ToCompensationResponse(comp)
		resp.Compensation = &compResp
	}

	return resp, nil
}

// ListByBatch implements Service.
func (s *serviceImpl) ListByBatch(ctx context.Context, batchID string) ([]training.TrainingResponse, error) {
	trainings, err := s.TrainingRepository.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	comps, err := s.CompensationRepository.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	byTraining := make(map[string]training.Compensation, len(comps))
	for _, c := range comps {
		byTraining[c.TrainingID] = c
	}

	responses := make([]training.TrainingResponse, 0, len(trainings))
	for _, t := range trainings {
		resp := training.ToTrainingResponse(t)
		if c, ok := byTraining[t.ID]; ok {
			compResp := training.ToCompensationResponse(c)
			resp.Compensation = &compResp
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// UpdateTraining implements Service. Any edit re-derives the compensation
// row, leaving a manual override in place.
func (s *serviceImpl) UpdateTraining(ctx context.Context, req training.UpdateTrainingRequest) (training.TrainingResponse, error) {
	if err := req.Validate(); err != nil {
		return training.TrainingResponse{}, err
	}

	t, err := s.TrainingRepository.GetByID(ctx, req.ID)
	if err != nil {
		return training.TrainingResponse{}, err
	}

	if req.Date != nil {
		date, err := timeutil.ParseDate(*req.Date)
		if err != nil {
			return training.TrainingResponse{}, err
		}
		t.Date = date
	}
	if req.StartTime != nil {
		if *req.StartTime == "" {
			t.StartTime = nil
		} else {
			t.StartTime = req.StartTime
		}
	}
	if req.EndTime != nil {
		if *req.EndTime == "" {
			t.EndTime = nil
		} else {
			t.EndTime = req.EndTime
		}
	}
	if req.Title != nil {
		t.Title = req.Title
	}
	if req.CountsTowardHours != nil {
		t.CountsTowardHours = *req.CountsTowardHours
	}

	if err := s.TrainingRepository.Update(ctx, t); err != nil {
		return training.TrainingResponse{}, fmt.Errorf("update training: %w", err)
	}

	comp, err := s.syncCompensation(ctx, t)
	if err != nil {
		return training.TrainingResponse{}, err
	}

	resp := training.ToTrainingResponse(t)
	compResp := training.ToCompensationResponse(comp)
	resp.Compensation = &compResp
	return resp, nil
}

// DeleteTraining implements Service. The compensation row goes with it
// via ON DELETE CASCADE.
func (s *serviceImpl) DeleteTraining(ctx context.Context, id string) error {
	return s.TrainingRepository.Delete(ctx, id)
}

// SetOverrideRate implements Service.
func (s *serviceImpl) SetOverrideRate(ctx context.Context, req training.SetOverrideRateRequest) (training.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return training.CompensationResponse{}, err
	}

	if err := s.CompensationRepository.SetOverrideRate(ctx, req.TrainingID, req.OverrideRate); err != nil {
		return training.CompensationResponse{}, err
	}

	comp, err := s.CompensationRepository.GetByTraining(ctx, req.TrainingID)
	if err != nil {
		return training.CompensationResponse{}, err
	}

	return training.ToCompensationResponse(comp), nil
}

// BatchTotal implements Service.
func (s *serviceImpl) BatchTotal(ctx context.Context, batchID string) (training.BatchTotalResponse, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return training.BatchTotalResponse{}, err
	}

	total, err := s.CompensationRepository.BatchTotal(ctx, batchID)
	if err != nil {
		return training.BatchTotalResponse{}, fmt.Errorf("sum batch compensation: %w", err)
	}

	return training.BatchTotalResponse{BatchID: batchID, Total: total}, nil
}

// ResyncCompensation implements Service. A failing batch or training is
// logged and skipped so one bad row cannot stall the rest of the run.
func (s *serviceImpl) ResyncCompensation(ctx context.Context) (int, error) {
	batchIDs, err := s.batchRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active batches: %w", err)
	}

	count := 0
	for _, batchID := range batchIDs {
		trainings, err := s.TrainingRepository.ListByBatch(ctx, batchID)
		if err != nil {
			slog.Warn("Failed to list trainings for resync", "batch_id", batchID, "error", err)
			continue
		}
		for _, t := range trainings {
			if _, err := s.syncCompensation(ctx, t); err != nil {
				slog.Warn("Failed to resync compensation", "training_id", t.ID, "error", err)
				continue
			}
			count++
		}
	}

	return count, nil
}
