package transport

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
)

type fakeEstimateRepo struct {
	mu   sync.Mutex
	rows map[string]transport.MemberEstimate // keyed batchID+"/"+userID
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{rows: make(map[string]transport.MemberEstimate)}
}

func (f *fakeEstimateRepo) UpsertForMember(ctx context.Context, e transport.MemberEstimate) (transport.MemberEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[e.BatchID+"/"+e.UserID] = e
	return e, nil
}

func (f *fakeEstimateRepo) ListByBatch(ctx context.Context, batchID string) ([]transport.MemberEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []transport.MemberEstimate
	for _, e := range f.rows {
		if e.BatchID == batchID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEstimateRepo) GetByBatchAndUser(ctx context.Context, batchID, userID string) (transport.MemberEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[batchID+"/"+userID]
	if !ok {
		return transport.MemberEstimate{}, transport.ErrEstimateNotFound
	}
	return e, nil
}

type fakeBatchRepo struct {
	batches map[string]batch.Batch
}

func (f *fakeBatchRepo) Create(ctx context.Context, b batch.Batch) (batch.Batch, error) { return b, nil }
func (f *fakeBatchRepo) GetByID(ctx context.Context, id string) (batch.Batch, error) {
	b, ok := f.batches[id]
	if !ok {
		return batch.Batch{}, batch.ErrBatchNotFound
	}
	return b, nil
}
func (f *fakeBatchRepo) List(ctx context.Context, activeOnly bool) ([]batch.Batch, error) {
	return nil, nil
}
func (f *fakeBatchRepo) Update(ctx context.Context, b batch.Batch) error  { return nil }
func (f *fakeBatchRepo) Delete(ctx context.Context, id string) error      { return nil }
func (f *fakeBatchRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeBatchUserRepo struct {
	userIDs []string
}

func (f *fakeBatchUserRepo) Add(ctx context.Context, bu batch.BatchUser) (batch.BatchUser, error) {
	return bu, nil
}
func (f *fakeBatchUserRepo) GetByBatchAndUser(ctx context.Context, batchID, userID string) (batch.BatchUser, error) {
	return batch.BatchUser{}, batch.ErrBatchUserNotFound
}
func (f *fakeBatchUserRepo) ListByBatch(ctx context.Context, batchID string) ([]batch.BatchUser, error) {
	return nil, nil
}
func (f *fakeBatchUserRepo) ListUserIDsByBatch(ctx context.Context, batchID string) ([]string, error) {
	return f.userIDs, nil
}
func (f *fakeBatchUserRepo) UpdateStatus(ctx context.Context, id string, status batch.BatchUserStatus) error {
	return nil
}
func (f *fakeBatchUserRepo) Remove(ctx context.Context, id string) error { return nil }

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByKakaoID(ctx context.Context, kakaoID string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context, role *user.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) UpdateAddress(ctx context.Context, id string, address string) error {
	return nil
}

type fakeGeocoder struct {
	failFor map[string]bool
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if f.failFor[address] {
		return 0, 0, errors.New("no result")
	}
	return 37.5, 127.0, nil
}

type fakeRouter struct {
	km      float64
	hasToll bool
	fail    bool
}

func (f *fakeRouter) DrivingDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, bool, error) {
	if f.fail {
		return 0, false, errors.New("route failed")
	}
	return f.km, f.hasToll, nil
}

func strPtr(s string) *string { return &s }

func newTestService(users map[string]user.User, userIDs []string, geo *fakeGeocoder, router *fakeRouter) (Service, *fakeEstimateRepo) {
	lat, lng := 37.6, 127.1
	repo := newFakeEstimateRepo()
	svc := NewService(
		repo,
		&fakeBatchRepo{batches: map[string]batch.Batch{
			"b1": {
				ID:            "b1",
				Name:          "3rd call-up",
				StartDate:     time.Now(),
				EndDate:       time.Now().AddDate(0, 0, 2),
				UnitLatitude:  &lat,
				UnitLongitude: &lng,
			},
		}},
		&fakeBatchUserRepo{userIDs: userIDs},
		&fakeUserRepo{users: users},
		geo,
		router,
	)
	return svc, repo
}

func TestEstimateBatchTagsEachMember(t *testing.T) {
	users := map[string]user.User{
		"u-ok":      {ID: "u-ok", Address: strPtr("서울시 강남구")},
		"u-noaddr":  {ID: "u-noaddr"},
		"u-geofail": {ID: "u-geofail", Address: strPtr("unresolvable")},
	}
	geo := &fakeGeocoder{failFor: map[string]bool{"unresolvable": true}}
	router := &fakeRouter{km: 50, hasToll: true}

	svc, repo := newTestService(users, []string{"u-ok", "u-noaddr", "u-geofail", "u-missing"}, geo, router)

	resp, err := svc.EstimateBatch(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, resp.Results, 4)

	byUser := make(map[string]transport.MemberEstimateResponse)
	for _, r := range resp.Results {
		byUser[r.UserID] = r
	}

	assert.Equal(t, string(transport.StatusOK), byUser["u-ok"].Status)
	require.NotNil(t, byUser["u-ok"].Total)
	want := Estimate(50, true)
	assert.Equal(t, want.Total, *byUser["u-ok"].Total)

	assert.Equal(t, string(transport.StatusNoAddress), byUser["u-noaddr"].Status)
	assert.Nil(t, byUser["u-noaddr"].Total)

	assert.Equal(t, string(transport.StatusGeoFail), byUser["u-geofail"].Status)
	assert.Equal(t, string(transport.StatusError), byUser["u-missing"].Status)

	// Every member got a persisted row, failures included.
	rows, err := repo.ListByBatch(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestEstimateBatchRouteFailure(t *testing.T) {
	users := map[string]user.User{
		"u1": {ID: "u1", Address: strPtr("경기도 수원시")},
	}
	svc, _ := newTestService(users, []string{"u1"}, &fakeGeocoder{}, &fakeRouter{fail: true})

	resp, err := svc.EstimateBatch(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, string(transport.StatusRouteFail), resp.Results[0].Status)
}

func TestEstimateBatchRerunOverwrites(t *testing.T) {
	users := map[string]user.User{
		"u1": {ID: "u1", Address: strPtr("경기도 수원시")},
	}
	router := &fakeRouter{km: 40, hasToll: false}
	svc, repo := newTestService(users, []string{"u1"}, &fakeGeocoder{}, router)

	_, err := svc.EstimateBatch(context.Background(), "b1")
	require.NoError(t, err)

	// Distance changes between runs; the rerun replaces the row.
	router.km = 60
	_, err = svc.EstimateBatch(context.Background(), "b1")
	require.NoError(t, err)

	row, err := repo.GetByBatchAndUser(context.Background(), "b1", "u1")
	require.NoError(t, err)
	require.NotNil(t, row.Km)
	assert.Equal(t, 60.0, *row.Km)
}

func TestEstimateBatchNoUnitLocation(t *testing.T) {
	repo := newFakeEstimateRepo()
	svc := NewService(
		repo,
		&fakeBatchRepo{batches: map[string]batch.Batch{
			"b2": {ID: "b2", Name: "no unit set"},
		}},
		&fakeBatchUserRepo{},
		&fakeUserRepo{},
		&fakeGeocoder{},
		&fakeRouter{},
	)

	_, err := svc.EstimateBatch(context.Background(), "b2")
	assert.ErrorIs(t, err, transport.ErrNoUnitLocation)
}

func TestQuickEstimate(t *testing.T) {
	svc, _ := newTestService(nil, nil, &fakeGeocoder{}, &fakeRouter{})

	resp, err := svc.QuickEstimate(context.Background(), transport.EstimateRequest{Km: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), resp.Total)

	_, err = svc.QuickEstimate(context.Background(), transport.EstimateRequest{Km: -1})
	assert.Error(t, err)
}
