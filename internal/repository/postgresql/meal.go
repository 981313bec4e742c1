package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/meal"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const mealColumns = `id, batch_id, date, meal_type, menu, headcount, created_at, updated_at`

type mealPlanRepositoryImpl struct {
	db *database.DB
}

func NewMealPlanRepository(db *database.DB) meal.PlanRepository {
	return &mealPlanRepositoryImpl{db: db}
}

func scanMealPlan(row pgx.Row) (meal.Plan, error) {
	var p meal.Plan
	err := row.Scan(
		&p.ID,
		&p.BatchID,
		&p.Date,
		&p.MealType,
		&p.Menu,
		&p.Headcount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meal.Plan{}, meal.ErrPlanNotFound
		}
		return meal.Plan{}, err
	}
	return p, nil
}

// Upsert implements meal.PlanRepository.
func (r *mealPlanRepositoryImpl) Upsert(ctx context.Context, p meal.Plan) (meal.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meal_plans (batch_id, date, meal_type, menu, headcount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (batch_id, date, meal_type) DO UPDATE
		SET menu = EXCLUDED.menu,
			headcount = EXCLUDED.headcount,
			updated_at = NOW()
		RETURNING ` + mealColumns

	return scanMealPlan(q.QueryRow(ctx, query, p.BatchID, p.Date, p.MealType, p.Menu, p.Headcount))
}

// ListByBatch implements meal.PlanRepository.
func (r *mealPlanRepositoryImpl) ListByBatch(ctx context.Context, batchID string, from, to *time.Time) ([]meal.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + mealColumns + ` FROM meal_plans WHERE batch_id = $1`
	args := []interface{}{batchID}
	if from != nil {
		args = append(args, *from)
		query += ` AND date >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND date <= $3`
		} else {
			query += ` AND date <= $2`
		}
	}
	query += ` ORDER BY date, meal_type`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []meal.Plan
	for rows.Next() {
		p, err := scanMealPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

// Delete implements meal.PlanRepository.
func (r *mealPlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return meal.ErrPlanNotFound
	}

	return nil
}
