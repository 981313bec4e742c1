package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const recordColumns = `id, user_id, date, check_in, check_in_latitude, check_in_longitude, check_in_zone_id, check_out, check_out_latitude, check_out_longitude, is_manual, created_at, updated_at`

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) commuting.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (commuting.Record, error) {
	var rec commuting.Record
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckInLatitude,
		&rec.CheckInLongitude,
		&rec.CheckInZoneID,
		&rec.CheckOut,
		&rec.CheckOutLatitude,
		&rec.CheckOutLongitude,
		&rec.IsManual,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commuting.Record{}, commuting.ErrRecordNotFound
		}
		return commuting.Record{}, err
	}
	return rec, nil
}

// UpsertCheckIn implements commuting.RecordRepository. The conditional
// update arm only fires when the existing row has no check-in stamp, so a
// second check-in for the same day affects zero rows and maps to
// ErrAlreadyCheckedIn.
func (r *recordRepositoryImpl) UpsertCheckIn(ctx context.Context, rec commuting.Record) (commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commuting_records (user_id, date, check_in, check_in_latitude, check_in_longitude, check_in_zone_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			check_in_latitude = EXCLUDED.check_in_latitude,
			check_in_longitude = EXCLUDED.check_in_longitude,
			check_in_zone_id = EXCLUDED.check_in_zone_id,
			updated_at = NOW()
		WHERE commuting_records.check_in IS NULL
		RETURNING ` + recordColumns

	saved, err := scanRecord(q.QueryRow(ctx, query,
		rec.UserID,
		rec.Date,
		rec.CheckIn,
		rec.CheckInLatitude,
		rec.CheckInLongitude,
		rec.CheckInZoneID,
	))
	if err != nil {
		if errors.Is(err, commuting.ErrRecordNotFound) {
			return commuting.Record{}, commuting.ErrAlreadyCheckedIn
		}
		return commuting.Record{}, err
	}

	return saved, nil
}

// SetCheckOut implements commuting.RecordRepository. Only a record with a
// check-in and no check-out accepts the stamp.
func (r *recordRepositoryImpl) SetCheckOut(ctx context.Context, rec commuting.Record) (commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE commuting_records
		SET check_out = $1, check_out_latitude = $2, check_out_longitude = $3, updated_at = NOW()
		WHERE user_id = $4 AND date = $5 AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING ` + recordColumns

	saved, err := scanRecord(q.QueryRow(ctx, query,
		rec.CheckOut,
		rec.CheckOutLatitude,
		rec.CheckOutLongitude,
		rec.UserID,
		rec.Date,
	))
	if err != nil {
		if errors.Is(err, commuting.ErrRecordNotFound) {
			// Distinguish never-checked-in from already-checked-out.
			existing, getErr := r.GetByUserAndDate(ctx, rec.UserID, rec.Date)
			if getErr != nil || existing.CheckIn == nil {
				return commuting.Record{}, commuting.ErrNotCheckedIn
			}
			return commuting.Record{}, commuting.ErrAlreadyCheckedOut
		}
		return commuting.Record{}, err
	}

	return saved, nil
}

// UpsertManual implements commuting.RecordRepository. Admin entries
// overwrite whatever is there for (user_id, date).
func (r *recordRepositoryImpl) UpsertManual(ctx context.Context, rec commuting.Record) (commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commuting_records (user_id, date, check_in, check_in_latitude, check_in_longitude, check_in_zone_id,
			check_out, check_out_latitude, check_out_longitude, is_manual)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		ON CONFLICT (user_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			check_in_latitude = EXCLUDED.check_in_latitude,
			check_in_longitude = EXCLUDED.check_in_longitude,
			check_in_zone_id = EXCLUDED.check_in_zone_id,
			check_out = EXCLUDED.check_out,
			check_out_latitude = EXCLUDED.check_out_latitude,
			check_out_longitude = EXCLUDED.check_out_longitude,
			is_manual = TRUE,
			updated_at = NOW()
		RETURNING ` + recordColumns

	return scanRecord(q.QueryRow(ctx, query,
		rec.UserID,
		rec.Date,
		rec.CheckIn,
		rec.CheckInLatitude,
		rec.CheckInLongitude,
		rec.CheckInZoneID,
		rec.CheckOut,
		rec.CheckOutLatitude,
		rec.CheckOutLongitude,
	))
}

// GetByUserAndDate implements commuting.RecordRepository.
func (r *recordRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM commuting_records WHERE user_id = $1 AND date = $2`
	return scanRecord(q.QueryRow(ctx, query, userID, date))
}

// ListByUser implements commuting.RecordRepository.
func (r *recordRepositoryImpl) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM commuting_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []commuting.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByDate implements commuting.RecordRepository. Joins the user name
// for the admin day view.
func (r *recordRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]commuting.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.user_id, r.date, r.check_in, r.check_in_latitude, r.check_in_longitude, r.check_in_zone_id,
			   r.check_out, r.check_out_latitude, r.check_out_longitude, r.is_manual, r.created_at, r.updated_at,
			   u.name
		FROM commuting_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.date = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []commuting.Record
	for rows.Next() {
		var rec commuting.Record
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Date,
			&rec.CheckIn,
			&rec.CheckInLatitude,
			&rec.CheckInLongitude,
			&rec.CheckInZoneID,
			&rec.CheckOut,
			&rec.CheckOutLatitude,
			&rec.CheckOutLongitude,
			&rec.IsManual,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.UserName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
