package commuting

import (
	"context"
	"fmt"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/timeutil"
)

type Service interface {
	CheckIn(ctx context.Context, userID string, req commuting.CheckInRequest) (commuting.RecordResponse, error)
	CheckOut(ctx context.Context, userID string, req commuting.CheckOutRequest) (commuting.RecordResponse, error)
	ManualEntry(ctx context.Context, req commuting.ManualEntryRequest) (commuting.RecordResponse, error)
	GetMyRecord(ctx context.Context, userID string, date string) (commuting.RecordResponse, error)
	ListMyRecords(ctx context.Context, userID string, from, to string) ([]commuting.RecordResponse, error)
	ListByDate(ctx context.Context, date string) ([]commuting.RecordResponse, error)

	CreateZone(ctx context.Context, req commuting.CreateZoneRequest) (commuting.ZoneResponse, error)
	ListZones(ctx context.Context, activeOnly bool) ([]commuting.ZoneResponse, error)
	UpdateZone(ctx context.Context, req commuting.UpdateZoneRequest) (commuting.ZoneResponse, error)
	DeleteZone(ctx context.Context, id string) error
}

type serviceImpl struct {
	commuting.RecordRepository
	commuting.ZoneRepository
	now func() time.Time
}

func NewService(recordRepo commuting.RecordRepository, zoneRepo commuting.ZoneRepository) Service {
	return &serviceImpl{
		RecordRepository: recordRepo,
		ZoneRepository:   zoneRepo,
		now:              time.Now,
	}
}

// today returns the current date truncated to UTC midnight, the canonical
// record key.
func (s *serviceImpl) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements Service. The position must fall inside an active GPS
// zone; the write is an upsert keyed (user_id, date), so a concurrent
// double tap cannot create two rows or overwrite the first stamp.
func (s *serviceImpl) CheckIn(ctx context.Context, userID string, req commuting.CheckInRequest) (commuting.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return commuting.RecordResponse{}, err
	}

	zones, err := s.ZoneRepository.List(ctx, true)
	if err != nil {
		return commuting.RecordResponse{}, fmt.Errorf("load gps zones: %w", err)
	}

	point := commuting.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	zone := commuting.MatchZone(point, zones)
	if zone == nil {
		return commuting.RecordResponse{}, commuting.ErrOutsideAllowedRadius
	}

	now := s.now().UTC()
	rec, err := s.RecordRepository.UpsertCheckIn(ctx, commuting.Record{
		UserID:           userID,
		Date:             s.today(),
		CheckIn:          &now,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		CheckInZoneID:    &zone.ID,
	})
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	return commuting.ToRecordResponse(rec), nil
}

// CheckOut implements Service. Unlike check-in, checkout does not require
// being inside a zone; leaving the site is the normal case.
func (s *serviceImpl) CheckOut(ctx context.Context, userID string, req commuting.CheckOutRequest) (commuting.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return commuting.RecordResponse{}, err
	}

	now := s.now().UTC()
	rec, err := s.RecordRepository.SetCheckOut(ctx, commuting.Record{
		UserID:            userID,
		Date:              s.today(),
		CheckOut:          &now,
		CheckOutLatitude:  &req.Latitude,
		CheckOutLongitude: &req.Longitude,
	})
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	return commuting.ToRecordResponse(rec), nil
}

// ManualEntry implements Service.
func (s *serviceImpl) ManualEntry(ctx context.Context, req commuting.ManualEntryRequest) (commuting.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return commuting.RecordResponse{}, err
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	rec := commuting.Record{
		UserID:   req.UserID,
		Date:     date,
		IsManual: true,
	}
	if req.CheckIn != nil {
		t, err := clockOnDate(date, *req.CheckIn)
		if err != nil {
			return commuting.RecordResponse{}, err
		}
		rec.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, err := clockOnDate(date, *req.CheckOut)
		if err != nil {
			return commuting.RecordResponse{}, err
		}
		rec.CheckOut = &t
	}

	saved, err := s.RecordRepository.UpsertManual(ctx, rec)
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	return commuting.ToRecordResponse(saved), nil
}

// clockOnDate combines a UTC midnight date with an "HH:MM" wall time.
func clockOnDate(date time.Time, clock string) (time.Time, error) {
	hours, err := timeutil.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(hours * float64(time.Hour))), nil
}

// GetMyRecord implements Service.
func (s *serviceImpl) GetMyRecord(ctx context.Context, userID string, date string) (commuting.RecordResponse, error) {
	d, err := timeutil.ParseDate(date)
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByUserAndDate(ctx, userID, d)
	if err != nil {
		return commuting.RecordResponse{}, err
	}

	return commuting.ToRecordResponse(rec), nil
}

// ListMyRecords implements Service.
func (s *serviceImpl) ListMyRecords(ctx context.Context, userID string, from, to string) ([]commuting.RecordResponse, error) {
	fromDate, err := timeutil.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := timeutil.ParseDate(to)
	if err != nil {
		return nil, err
	}

	records, err := s.RecordRepository.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	responses := make([]commuting.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, commuting.ToRecordResponse(rec))
	}
	return responses, nil
}

// ListByDate implements Service.
func (s *serviceImpl) ListByDate(ctx context.Context, date string) ([]commuting.RecordResponse, error) {
	d, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	records, err := s.RecordRepository.ListByDate(ctx, d)
	if err != nil {
		return nil, err
	}

	responses := make([]commuting.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, commuting.ToRecordResponse(rec))
	}
	return responses, nil
}

// CreateZone implements Service.
func (s *serviceImpl) CreateZone(ctx context.Context, req commuting.CreateZoneRequest) (commuting.ZoneResponse, error) {
	if err := req.Validate(); err != nil {
		return commuting.ZoneResponse{}, err
	}

	z, err := s.ZoneRepository.Create(ctx, commuting.Zone{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
	})
	if err != nil {
		return commuting.ZoneResponse{}, err
	}

	return commuting.ToZoneResponse(z), nil
}

// ListZones implements Service.
func (s *serviceImpl) ListZones(ctx context.Context, activeOnly bool) ([]commuting.ZoneResponse, error) {
	zones, err := s.ZoneRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]commuting.ZoneResponse, 0, len(zones))
	for _, z := range zones {
		responses = append(responses, commuting.ToZoneResponse(z))
	}
	return responses, nil
}

// UpdateZone implements Service.
func (s *serviceImpl) UpdateZone(ctx context.Context, req commuting.UpdateZoneRequest) (commuting.ZoneResponse, error) {
	z, err := s.ZoneRepository.GetByID(ctx, req.ID)
	if err != nil {
		return commuting.ZoneResponse{}, err
	}

	if req.Name != nil {
		z.Name = *req.Name
	}
	if req.Latitude != nil {
		z.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		z.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		z.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		z.IsActive = *req.IsActive
	}

	if err := s.ZoneRepository.Update(ctx, z); err != nil {
		return commuting.ZoneResponse{}, err
	}

	return commuting.ToZoneResponse(z), nil
}

// DeleteZone implements Service.
func (s *serviceImpl) DeleteZone(ctx context.Context, id string) error {
	return s.ZoneRepository.Delete(ctx, id)
}
