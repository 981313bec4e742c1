package commuting

import (
	"context"
	"time"
)

type ZoneRepository interface {
	Create(ctx context.Context, z Zone) (Zone, error)
	GetByID(ctx context.Context, id string) (Zone, error)
	List(ctx context.Context, activeOnly bool) ([]Zone, error)
	Update(ctx context.Context, z Zone) error
	Delete(ctx context.Context, id string) error
}

type RecordRepository interface {
	// UpsertCheckIn inserts the day's record or fills its check-in slot,
	// atomically keyed on (user_id, date). It returns ErrAlreadyCheckedIn
	// when the slot is already stamped, so a concurrent double check-in
	// can never produce a second row or overwrite the first stamp.
	UpsertCheckIn(ctx context.Context, r Record) (Record, error)
	// SetCheckOut fills the check-out slot of an existing record with a
	// stamped check-in and an empty check-out.
	SetCheckOut(ctx context.Context, r Record) (Record, error)
	// UpsertManual writes an admin-entered record for (user_id, date).
	UpsertManual(ctx context.Context, r Record) (Record, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Record, error)
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
