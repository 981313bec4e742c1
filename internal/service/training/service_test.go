package training

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
)

type memoryBatchRepo struct {
	activeIDs []string
}

func (r *memoryBatchRepo) Create(_ context.Context, b batch.Batch) (batch.Batch, error) {
	return b, nil
}

func (r *memoryBatchRepo) GetByID(_ context.Context, id string) (batch.Batch, error) {
	return batch.Batch{ID: id}, nil
}

func (r *memoryBatchRepo) List(_ context.Context, _ bool) ([]batch.Batch, error) {
	return nil, nil
}

func (r *memoryBatchRepo) Update(_ context.Context, _ batch.Batch) error { return nil }

func (r *memoryBatchRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *memoryBatchRepo) ListActiveIDs(_ context.Context) ([]string, error) {
	return r.activeIDs, nil
}

type memoryTrainingRepo struct {
	seq       int
	trainings map[string]training.Training

	// listErr fails ListByBatch for the named batch.
	listErr string
}

func newMemoryTrainingRepo() *memoryTrainingRepo {
	return &memoryTrainingRepo{trainings: map[string]training.Training{}}
}

func (r *memoryTrainingRepo) Create(_ context.Context, t training.Training) (training.Training, error) {
	r.seq++
	t.ID = fmt.Sprintf("training-%d", r.seq)
	r.trainings[t.ID] = t
	return t, nil
}

func (r *memoryTrainingRepo) GetByID(_ context.Context, id string) (training.Training, error) {
	t, ok := r.trainings[id]
	if !ok {
		return training.Training{}, training.ErrTrainingNotFound
	}
	return t, nil
}

func (r *memoryTrainingRepo) ListByBatch(_ context.Context, batchID string) ([]training.Training, error) {
	if batchID == r.listErr {
		return nil, errors.New("list failed")
	}
	var out []training.Training
	for _, t := range r.trainings {
		if t.BatchID == batchID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryTrainingRepo) Update(_ context.Context, t training.Training) error {
	if _, ok := r.trainings[t.ID]; !ok {
		return training.ErrTrainingNotFound
	}
	r.trainings[t.ID] = t
	return nil
}

func (r *memoryTrainingRepo) Delete(_ context.Context, id string) error {
	delete(r.trainings, id)
	return nil
}

// memoryCompensationRepo mirrors the store's contract: Upsert never
// touches override_rate, and BatchTotal prefers it over daily_rate.
type memoryCompensationRepo struct {
	trainings *memoryTrainingRepo
	rows      map[string]training.Compensation // keyed by training ID
}

func newMemoryCompensationRepo(trainings *memoryTrainingRepo) *memoryCompensationRepo {
	return &memoryCompensationRepo{trainings: trainings, rows: map[string]training.Compensation{}}
}

func (r *memoryCompensationRepo) Upsert(_ context.Context, c training.Compensation) (training.Compensation, error) {
	if existing, ok := r.rows[c.TrainingID]; ok {
		c.ID = existing.ID
		c.OverrideRate = existing.OverrideRate
	} else {
		c.ID = "comp-" + c.TrainingID
	}
	r.rows[c.TrainingID] = c
	return c, nil
}

func (r *memoryCompensationRepo) GetByTraining(_ context.Context, trainingID string) (training.Compensation, error) {
	c, ok := r.rows[trainingID]
	if !ok {
		return training.Compensation{}, training.ErrCompensationNotFound
	}
	return c, nil
}

func (r *memoryCompensationRepo) ListByBatch(_ context.Context, batchID string) ([]training.Compensation, error) {
	var out []training.Compensation
	for id, c := range r.rows {
		if t, ok := r.trainings.trainings[id]; ok && t.BatchID == batchID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCompensationRepo) SetOverrideRate(_ context.Context, trainingID string, overrideRate *int64) error {
	c, ok := r.rows[trainingID]
	if !ok {
		return training.ErrCompensationNotFound
	}
	c.OverrideRate = overrideRate
	r.rows[trainingID] = c
	return nil
}

func (r *memoryCompensationRepo) BatchTotal(_ context.Context, batchID string) (int64, error) {
	var total int64
	for id, c := range r.rows {
		t, ok := r.trainings.trainings[id]
		if !ok || t.BatchID != batchID || !t.CountsTowardHours {
			continue
		}
		if c.OverrideRate != nil {
			total += *c.OverrideRate
		} else {
			total += c.DailyRate
		}
	}
	return total, nil
}

func newTestService(activeBatches ...string) (Service, *memoryTrainingRepo, *memoryCompensationRepo) {
	trainings := newMemoryTrainingRepo()
	comps := newMemoryCompensationRepo(trainings)
	svc := NewService(trainings, comps, &memoryBatchRepo{activeIDs: activeBatches})
	return svc, trainings, comps
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func createTraining(t *testing.T, svc Service, batchID, date, start, end string) training.TrainingResponse {
	t.Helper()
	resp, err := svc.CreateTraining(context.Background(), training.CreateTrainingRequest{
		BatchID:   batchID,
		Date:      date,
		StartTime: strPtr(start),
		EndTime:   strPtr(end),
	})
	require.NoError(t, err)
	return resp
}

func TestCreateTrainingSyncsCompensation(t *testing.T) {
	svc, _, _ := newTestService()

	// Monday, 09:00-18:00 minus the lunch hour: a full 8-hour weekday.
	resp := createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")

	require.NotNil(t, resp.Compensation)
	assert.Equal(t, 8.0, resp.Compensation.TrainingHours)
	assert.False(t, resp.Compensation.IsWeekend)
	assert.Equal(t, int64(100000), resp.Compensation.DailyRate)
	assert.Nil(t, resp.Compensation.OverrideRate)
}

func TestUpdateTrainingResyncPreservesOverride(t *testing.T) {
	svc, _, comps := newTestService()

	created := createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")

	_, err := svc.SetOverrideRate(context.Background(), training.SetOverrideRateRequest{
		TrainingID:   created.ID,
		OverrideRate: int64Ptr(120000),
	})
	require.NoError(t, err)

	// Shortening the day re-derives hours and daily rate but must leave
	// the manual override untouched.
	updated, err := svc.UpdateTraining(context.Background(), training.UpdateTrainingRequest{
		ID:      created.ID,
		EndTime: strPtr("13:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Compensation)
	assert.Equal(t, 3.0, updated.Compensation.TrainingHours)
	assert.Equal(t, int64(37500), updated.Compensation.DailyRate)
	require.NotNil(t, updated.Compensation.OverrideRate)
	assert.Equal(t, int64(120000), *updated.Compensation.OverrideRate)

	row, err := comps.GetByTraining(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, row.OverrideRate)
	assert.Equal(t, int64(120000), *row.OverrideRate)
}

func TestBatchTotalPrefersOverride(t *testing.T) {
	svc, _, _ := newTestService()

	// Two full weekdays at 100000 each, plus one in an unrelated batch.
	first := createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")
	createTraining(t, svc, "batch-1", "2026-03-03", "09:00", "18:00")
	createTraining(t, svc, "batch-2", "2026-03-02", "09:00", "18:00")

	_, err := svc.SetOverrideRate(context.Background(), training.SetOverrideRateRequest{
		TrainingID:   first.ID,
		OverrideRate: int64Ptr(150000),
	})
	require.NoError(t, err)

	total, err := svc.BatchTotal(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, int64(250000), total.Total)

	// Clearing the override falls back to the computed daily rate.
	_, err = svc.SetOverrideRate(context.Background(), training.SetOverrideRateRequest{
		TrainingID:   first.ID,
		OverrideRate: nil,
	})
	require.NoError(t, err)

	total, err = svc.BatchTotal(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200000), total.Total)
}

func TestSetOverrideRateRejectsNegative(t *testing.T) {
	svc, _, _ := newTestService()
	created := createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")

	_, err := svc.SetOverrideRate(context.Background(), training.SetOverrideRateRequest{
		TrainingID:   created.ID,
		OverrideRate: int64Ptr(-1),
	})
	assert.Error(t, err)
}

func TestResyncCompensationPreservesOverride(t *testing.T) {
	svc, _, comps := newTestService("batch-1")

	created := createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")
	_, err := svc.SetOverrideRate(context.Background(), training.SetOverrideRateRequest{
		TrainingID:   created.ID,
		OverrideRate: int64Ptr(90000),
	})
	require.NoError(t, err)

	count, err := svc.ResyncCompensation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := comps.GetByTraining(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), row.DailyRate)
	require.NotNil(t, row.OverrideRate)
	assert.Equal(t, int64(90000), *row.OverrideRate)
}

func TestResyncCompensationContinuesPastFailures(t *testing.T) {
	svc, trainings, _ := newTestService("bad-batch", "batch-1")
	trainings.listErr = "bad-batch"

	createTraining(t, svc, "batch-1", "2026-03-02", "09:00", "18:00")
	createTraining(t, svc, "batch-1", "2026-03-03", "09:00", "18:00")

	// A training whose times cannot be parsed fails its own resync only.
	trainings.trainings["training-x"] = training.Training{
		ID:        "training-x",
		BatchID:   "batch-1",
		StartTime: strPtr("9am"),
		EndTime:   strPtr("18:00"),
	}

	count, err := svc.ResyncCompensation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
