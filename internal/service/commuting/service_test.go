package commuting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type memoryZoneRepo struct {
	zones []commuting.Zone
}

func (r *memoryZoneRepo) Create(_ context.Context, z commuting.Zone) (commuting.Zone, error) {
	z.ID = "zone-" + z.Name
	r.zones = append(r.zones, z)
	return z, nil
}

func (r *memoryZoneRepo) GetByID(_ context.Context, id string) (commuting.Zone, error) {
	for _, z := range r.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return commuting.Zone{}, commuting.ErrZoneNotFound
}

func (r *memoryZoneRepo) List(_ context.Context, activeOnly bool) ([]commuting.Zone, error) {
	var out []commuting.Zone
	for _, z := range r.zones {
		if activeOnly && !z.IsActive {
			continue
		}
		out = append(out, z)
	}
	return out, nil
}

func (r *memoryZoneRepo) Update(_ context.Context, z commuting.Zone) error {
	for i := range r.zones {
		if r.zones[i].ID == z.ID {
			r.zones[i] = z
			return nil
		}
	}
	return commuting.ErrZoneNotFound
}

func (r *memoryZoneRepo) Delete(_ context.Context, id string) error {
	for i := range r.zones {
		if r.zones[i].ID == id {
			r.zones = append(r.zones[:i], r.zones[i+1:]...)
			return nil
		}
	}
	return commuting.ErrZoneNotFound
}

type recordKey struct {
	userID string
	date   time.Time
}

type memoryRecordRepo struct {
	records map[recordKey]commuting.Record
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{records: map[recordKey]commuting.Record{}}
}

func (r *memoryRecordRepo) UpsertCheckIn(_ context.Context, rec commuting.Record) (commuting.Record, error) {
	key := recordKey{rec.UserID, rec.Date}
	if existing, ok := r.records[key]; ok {
		if existing.CheckIn != nil {
			return commuting.Record{}, commuting.ErrAlreadyCheckedIn
		}
		existing.CheckIn = rec.CheckIn
		existing.CheckInLatitude = rec.CheckInLatitude
		existing.CheckInLongitude = rec.CheckInLongitude
		existing.CheckInZoneID = rec.CheckInZoneID
		r.records[key] = existing
		return existing, nil
	}
	rec.ID = "rec-" + rec.UserID
	r.records[key] = rec
	return rec, nil
}

func (r *memoryRecordRepo) SetCheckOut(_ context.Context, rec commuting.Record) (commuting.Record, error) {
	key := recordKey{rec.UserID, rec.Date}
	existing, ok := r.records[key]
	if !ok || existing.CheckIn == nil {
		return commuting.Record{}, commuting.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return commuting.Record{}, commuting.ErrAlreadyCheckedOut
	}
	existing.CheckOut = rec.CheckOut
	existing.CheckOutLatitude = rec.CheckOutLatitude
	existing.CheckOutLongitude = rec.CheckOutLongitude
	r.records[key] = existing
	return existing, nil
}

func (r *memoryRecordRepo) UpsertManual(_ context.Context, rec commuting.Record) (commuting.Record, error) {
	key := recordKey{rec.UserID, rec.Date}
	if existing, ok := r.records[key]; ok {
		rec.ID = existing.ID
	} else {
		rec.ID = "rec-" + rec.UserID
	}
	r.records[key] = rec
	return rec, nil
}

func (r *memoryRecordRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (commuting.Record, error) {
	rec, ok := r.records[recordKey{userID, date}]
	if !ok {
		return commuting.Record{}, commuting.ErrRecordNotFound
	}
	return rec, nil
}

func (r *memoryRecordRepo) ListByUser(_ context.Context, userID string, from, to time.Time) ([]commuting.Record, error) {
	var out []commuting.Record
	for key, rec := range r.records {
		if key.userID == userID && !key.date.Before(from) && !key.date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRecordRepo) ListByDate(_ context.Context, date time.Time) ([]commuting.Record, error) {
	var out []commuting.Record
	for key, rec := range r.records {
		if key.date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestService(zones ...commuting.Zone) (Service, *memoryRecordRepo) {
	records := newMemoryRecordRepo()
	svc := NewService(records, &memoryZoneRepo{zones: zones})
	svc.(*serviceImpl).now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)
	}
	return svc, records
}

// City hall area in Seoul; hqGate sits ~150m from hqZone's center.
var hqZone = commuting.Zone{
	ID:           "zone-hq",
	Name:         "regiment hq",
	Latitude:     37.5665,
	Longitude:    126.9780,
	RadiusMeters: 200,
	IsActive:     true,
}

func TestCheckInInsideZone(t *testing.T) {
	svc, records := newTestService(hqZone)

	resp, err := svc.CheckIn(context.Background(), "user-1", commuting.CheckInRequest{
		Latitude:  37.5670,
		Longitude: 126.9790,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.CheckIn)
	require.NotNil(t, resp.ZoneID)
	assert.Equal(t, "zone-hq", *resp.ZoneID)
	assert.Len(t, records.records, 1)
}

func TestCheckInOutsideZone(t *testing.T) {
	svc, records := newTestService(hqZone)

	_, err := svc.CheckIn(context.Background(), "user-1", commuting.CheckInRequest{
		Latitude:  37.60,
		Longitude: 127.05,
	})
	assert.ErrorIs(t, err, commuting.ErrOutsideAllowedRadius)
	assert.Empty(t, records.records)
}

func TestCheckInIgnoresInactiveZones(t *testing.T) {
	inactive := hqZone
	inactive.IsActive = false
	svc, _ := newTestService(inactive)

	_, err := svc.CheckIn(context.Background(), "user-1", commuting.CheckInRequest{
		Latitude:  hqZone.Latitude,
		Longitude: hqZone.Longitude,
	})
	assert.ErrorIs(t, err, commuting.ErrOutsideAllowedRadius)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc, _ := newTestService(hqZone)
	req := commuting.CheckInRequest{Latitude: hqZone.Latitude, Longitude: hqZone.Longitude}

	_, err := svc.CheckIn(context.Background(), "user-1", req)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, commuting.ErrAlreadyCheckedIn)
}

func TestCheckInRejectsBadCoordinates(t *testing.T) {
	svc, _ := newTestService(hqZone)

	_, err := svc.CheckIn(context.Background(), "user-1", commuting.CheckInRequest{
		Latitude:  91,
		Longitude: 0,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "latitude", verrs[0].Field)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _ := newTestService(hqZone)

	_, err := svc.CheckOut(context.Background(), "user-1", commuting.CheckOutRequest{
		Latitude:  37.58,
		Longitude: 127.00,
	})
	assert.ErrorIs(t, err, commuting.ErrNotCheckedIn)
}

func TestCheckOutOutsideZoneAllowed(t *testing.T) {
	svc, _ := newTestService(hqZone)

	_, err := svc.CheckIn(context.Background(), "user-1", commuting.CheckInRequest{
		Latitude:  hqZone.Latitude,
		Longitude: hqZone.Longitude,
	})
	require.NoError(t, err)

	// Checking out far away from every zone is fine.
	resp, err := svc.CheckOut(context.Background(), "user-1", commuting.CheckOutRequest{
		Latitude:  35.17,
		Longitude: 129.07,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
}

func TestManualEntry(t *testing.T) {
	svc, _ := newTestService()
	in, out := "09:00", "18:00"

	resp, err := svc.ManualEntry(context.Background(), commuting.ManualEntryRequest{
		UserID:   "user-2",
		Date:     "2026-03-01",
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsManual)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2026-03-01 09:00:00", *resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "2026-03-01 18:00:00", *resp.CheckOut)
}

func TestManualEntryBadClock(t *testing.T) {
	svc, _ := newTestService()
	bad := "9am"

	_, err := svc.ManualEntry(context.Background(), commuting.ManualEntryRequest{
		UserID:  "user-2",
		Date:    "2026-03-01",
		CheckIn: &bad,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "check_in", verrs[0].Field)
}
