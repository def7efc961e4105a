package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// HolidayRepositoryImpl implements the HolidayRepository interface
type HolidayRepositoryImpl struct {
	db        *sqlx.DB
	collector *metrics.Collector
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *sqlx.DB, collector *metrics.Collector) ports.HolidayRepository {
	return &HolidayRepositoryImpl{db: db, collector: collector}
}

func (r *HolidayRepositoryImpl) Create(ctx context.Context, holiday *entities.Holiday) error {
	defer observe(r.collector, "holiday_create", metrics.NewTimer(nil))

	query := `
		INSERT INTO holidays (jyear, jmonth, jday, title, is_official)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		holiday.JYear, holiday.JMonth, holiday.JDay,
		holiday.Title, holiday.IsOfficial,
	).Scan(&holiday.ID, &holiday.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.ErrHolidayExists
		}
		return fmt.Errorf("create holiday: %w", err)
	}

	return nil
}

func (r *HolidayRepositoryImpl) GetByID(ctx context.Context, id int) (*entities.Holiday, error) {
	defer observe(r.collector, "holiday_get", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, title, is_official, created_at
		FROM holidays
		WHERE id = $1`

	var holiday entities.Holiday
	err := r.db.GetContext(ctx, &holiday, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("get holiday by id: %w", err)
	}

	return &holiday, nil
}

func (r *HolidayRepositoryImpl) ListByDay(ctx context.Context, year, month, day int) ([]*entities.Holiday, error) {
	defer observe(r.collector, "holiday_list_day", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, title, is_official, created_at
		FROM holidays
		WHERE jyear = $1 AND jmonth = $2 AND jday = $3
		ORDER BY id`

	var holidays []*entities.Holiday
	err := r.db.SelectContext(ctx, &holidays, query, year, month, day)
	if err != nil {
		return nil, fmt.Errorf("list holidays by day: %w", err)
	}

	return holidays, nil
}

func (r *HolidayRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]*entities.Holiday, error) {
	defer observe(r.collector, "holiday_list_month", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, title, is_official, created_at
		FROM holidays
		WHERE jyear = $1 AND jmonth = $2
		ORDER BY jday, id`

	var holidays []*entities.Holiday
	err := r.db.SelectContext(ctx, &holidays, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("list holidays by month: %w", err)
	}

	return holidays, nil
}

func (r *HolidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]*entities.Holiday, error) {
	defer observe(r.collector, "holiday_list_year", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, title, is_official, created_at
		FROM holidays
		WHERE jyear = $1
		ORDER BY jmonth, jday, id`

	var holidays []*entities.Holiday
	err := r.db.SelectContext(ctx, &holidays, query, year)
	if err != nil {
		return nil, fmt.Errorf("list holidays by year: %w", err)
	}

	return holidays, nil
}

func (r *HolidayRepositoryImpl) Delete(ctx context.Context, id int) error {
	defer observe(r.collector, "holiday_delete", metrics.NewTimer(nil))

	query := `DELETE FROM holidays WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrHolidayNotFound
	}

	return nil
}
