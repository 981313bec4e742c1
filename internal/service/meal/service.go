package meal

import (
	"context"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/meal"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/timeutil"
)

type Service interface {
	// SavePlan creates or replaces the plan for (batch, date, meal type).
	SavePlan(ctx context.Context, req meal.SavePlanRequest) (meal.PlanResponse, error)
	ListByBatch(ctx context.Context, batchID string, from, to *string) ([]meal.PlanResponse, error)
	DeletePlan(ctx context.Context, id string) error
}

type serviceImpl struct {
	meal.PlanRepository
	batchRepo batch.BatchRepository
}

func NewService(planRepo meal.PlanRepository, batchRepo batch.BatchRepository) Service {
	return &serviceImpl{PlanRepository: planRepo, batchRepo: batchRepo}
}

// SavePlan implements Service.
func (s *serviceImpl) SavePlan(ctx context.Context, req meal.SavePlanRequest) (meal.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return meal.PlanResponse{}, err
	}

	if _, err := s.batchRepo.GetByID(ctx, req.BatchID); err != nil {
		return meal.PlanResponse{}, err
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return meal.PlanResponse{}, err
	}

	saved, err := s.PlanRepository.Upsert(ctx, meal.Plan{
		BatchID:   req.BatchID,
		Date:      date,
		MealType:  meal.MealType(req.MealType),
		Menu:      req.Menu,
		Headcount: req.Headcount,
	})
	if err != nil {
		return meal.PlanResponse{}, err
	}

	return meal.ToPlanResponse(saved), nil
}

// ListByBatch implements Service.
func (s *serviceImpl) ListByBatch(ctx context.Context, batchID string, from, to *string) ([]meal.PlanResponse, error) {
	var fromDate, toDate *time.Time
	if from != nil {
		d, err := timeutil.ParseDate(*from)
		if err != nil {
			return nil, err
		}
		fromDate = &d
	}
	if to != nil {
		d, err := timeutil.ParseDate(*to)
		if err != nil {
			return nil, err
		}
		toDate = &d
	}

	plans, err := s.PlanRepository.ListByBatch(ctx, batchID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	responses := make([]meal.PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, meal.ToPlanResponse(p))
	}
	return responses, nil
}

// DeletePlan implements Service.
func (s *serviceImpl) DeletePlan(ctx context.Context, id string) error {
	return s.PlanRepository.Delete(ctx, id)
}
