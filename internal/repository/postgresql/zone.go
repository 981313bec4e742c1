package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const zoneColumns = `id, name, latitude, longitude, radius_meters, is_active, created_at, updated_at`

type zoneRepositoryImpl struct {
	db *database.DB
}

func NewZoneRepository(db *database.DB) commuting.ZoneRepository {
	return &zoneRepositoryImpl{db: db}
}

func scanZone(row pgx.Row) (commuting.Zone, error) {
	var z commuting.Zone
	err := row.Scan(
		&z.ID,
		&z.Name,
		&z.Latitude,
		&z.Longitude,
		&z.RadiusMeters,
		&z.IsActive,
		&z.CreatedAt,
		&z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commuting.Zone{}, commuting.ErrZoneNotFound
		}
		return commuting.Zone{}, err
	}
	return z, nil
}

// Create implements commuting.ZoneRepository.
func (r *zoneRepositoryImpl) Create(ctx context.Context, z commuting.Zone) (commuting.Zone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO gps_zones (name, latitude, longitude, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + zoneColumns

	return scanZone(q.QueryRow(ctx, query, z.Name, z.Latitude, z.Longitude, z.RadiusMeters, z.IsActive))
}

// GetByID implements commuting.ZoneRepository.
func (r *zoneRepositoryImpl) GetByID(ctx context.Context, id string) (commuting.Zone, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + zoneColumns + ` FROM gps_zones WHERE id = $1`
	return scanZone(q.QueryRow(ctx, query, id))
}

// List implements commuting.ZoneRepository.
func (r *zoneRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]commuting.Zone, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + zoneColumns + ` FROM gps_zones`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []commuting.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

// Update implements commuting.ZoneRepository.
func (r *zoneRepositoryImpl) Update(ctx context.Context, z commuting.Zone) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE gps_zones
		SET name = $1, latitude = $2, longitude = $3, radius_meters = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, z.Name, z.Latitude, z.Longitude, z.RadiusMeters, z.IsActive, z.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return commuting.ErrZoneNotFound
	}

	return nil
}

// Delete implements commuting.ZoneRepository.
func (r *zoneRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM gps_zones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return commuting.ErrZoneNotFound
	}

	return nil
}
