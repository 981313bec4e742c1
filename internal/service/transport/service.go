package transport

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
)

// maxConcurrentEstimates bounds how many members are geocoded and routed
// at once, keeping the run inside Kakao's rate limits.
const maxConcurrentEstimates = 5

type Service interface {
	// QuickEstimate computes an estimate from a known distance without
	// persisting anything.
	QuickEstimate(ctx context.Context, req transport.EstimateRequest) (transport.EstimateResponse, error)
	// EstimateBatch runs the full pipeline for every approved member of
	// the batch and persists per-member results. One member's failure is
	// recorded in their row, never propagated.
	EstimateBatch(ctx context.Context, batchID string) (transport.BulkEstimateResponse, error)
	ListByBatch(ctx context.Context, batchID string) (transport.BulkEstimateResponse, error)
}

type serviceImpl struct {
	transport.EstimateRepository
	batchRepo     batch.BatchRepository
	batchUserRepo batch.BatchUserRepository
	userRepo      user.UserRepository
	geocoder      transport.Geocoder
	router        transport.Router
}

func NewService(
	estimateRepo transport.EstimateRepository,
	batchRepo batch.BatchRepository,
	batchUserRepo batch.BatchUserRepository,
	userRepo user.UserRepository,
	geocoder transport.Geocoder,
	router transport.Router,
) Service {
	return &serviceImpl{
		EstimateRepository: estimateRepo,
		batchRepo:          batchRepo,
		batchUserRepo:      batchUserRepo,
		userRepo:           userRepo,
		geocoder:           geocoder,
		router:             router,
	}
}

// QuickEstimate implements Service.
func (s *serviceImpl) QuickEstimate(ctx context.Context, req transport.EstimateRequest) (transport.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return transport.EstimateResponse{}, err
	}

	est := Estimate(req.Km, req.HasToll)
	return transport.EstimateResponse{Total: est.Total, Fuel: est.Fuel, Toll: est.Toll}, nil
}

// estimateMember runs the geocode-route-estimate pipeline for one member
// and returns the row to persist. Failures become statuses on the row.
func (s *serviceImpl) estimateMember(ctx context.Context, b batch.Batch, userID string) transport.MemberEstimate {
	row := transport.MemberEstimate{BatchID: b.ID, UserID: userID}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		row.Status = transport.StatusError
		return row
	}
	if u.Address == nil || *u.Address == "" {
		row.Status = transport.StatusNoAddress
		return row
	}

	lat, lng, err := s.geocoder.Geocode(ctx, *u.Address)
	if err != nil {
		slog.Warn("Geocoding failed", "user_id", userID, "error", err)
		row.Status = transport.StatusGeoFail
		return row
	}

	km, hasToll, err := s.router.DrivingDistance(ctx, lat, lng, *b.UnitLatitude, *b.UnitLongitude)
	if err != nil {
		slog.Warn("Routing failed", "user_id", userID, "error", err)
		row.Status = transport.StatusRouteFail
		return row
	}

	est := Estimate(km, hasToll)
	row.Status = transport.StatusOK
	row.Km = &km
	row.HasToll = &hasToll
	row.Fuel = &est.Fuel
	row.Toll = &est.Toll
	row.Total = &est.Total
	return row
}

// EstimateBatch implements Service.
func (s *serviceImpl) EstimateBatch(ctx context.Context, batchID string) (transport.BulkEstimateResponse, error) {
	b, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return transport.BulkEstimateResponse{}, err
	}
	if b.UnitLatitude == nil || b.UnitLongitude == nil {
		return transport.BulkEstimateResponse{}, transport.ErrNoUnitLocation
	}

	userIDs, err := s.batchUserRepo.ListUserIDsByBatch(ctx, batchID)
	if err != nil {
		return transport.BulkEstimateResponse{}, err
	}

	results := make([]transport.MemberEstimate, len(userIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEstimates)

	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			row := s.estimateMember(gctx, b, userID)

			saved, err := s.EstimateRepository.UpsertForMember(gctx, row)
			if err != nil {
				// Persisting failed outright; surface the member as ERROR
				// in the response but keep the run going.
				slog.Error("Failed to persist estimate", "user_id", userID, "error", err)
				saved = row
				saved.Status = transport.StatusError
			}

			mu.Lock()
			results[i] = saved
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return transport.BulkEstimateResponse{}, err
	}

	resp := transport.BulkEstimateResponse{BatchID: batchID}
	for _, row := range results {
		resp.Results = append(resp.Results, transport.ToMemberEstimateResponse(row))
	}
	return resp, nil
}

// ListByBatch implements Service.
func (s *serviceImpl) ListByBatch(ctx context.Context, batchID string) (transport.BulkEstimateResponse, error) {
	rows, err := s.EstimateRepository.ListByBatch(ctx, batchID)
	if err != nil {
		return transport.BulkEstimateResponse{}, err
	}

	resp := transport.BulkEstimateResponse{BatchID: batchID}
	for _, row := range rows {
		resp.Results = append(resp.Results, transport.ToMemberEstimateResponse(row))
	}
	return resp, nil
}
