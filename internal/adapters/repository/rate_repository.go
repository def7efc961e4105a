package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// RateRepositoryImpl implements the RateRepository interface
type RateRepositoryImpl struct {
	db        *sqlx.DB
	collector *metrics.Collector
}

// NewRateRepository creates a new gold rate repository
func NewRateRepository(db *sqlx.DB, collector *metrics.Collector) ports.RateRepository {
	return &RateRepositoryImpl{db: db, collector: collector}
}

func (r *RateRepositoryImpl) Upsert(ctx context.Context, rate *entities.GoldRate) error {
	defer observe(r.collector, "rate_upsert", metrics.NewTimer(nil))

	query := `
		INSERT INTO gold_rates (jyear, jmonth, jday, price_per_gram, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (jyear, jmonth, jday)
		DO UPDATE SET price_per_gram = EXCLUDED.price_per_gram,
			source = EXCLUDED.source,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		rate.JYear, rate.JMonth, rate.JDay,
		rate.PricePerGram, rate.Source,
	).Scan(&rate.ID, &rate.CreatedAt, &rate.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert gold rate: %w", err)
	}

	return nil
}

func (r *RateRepositoryImpl) GetByDay(ctx context.Context, year, month, day int) (*entities.GoldRate, error) {
	defer observe(r.collector, "rate_get_day", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, price_per_gram, source, created_at, updated_at
		FROM gold_rates
		WHERE jyear = $1 AND jmonth = $2 AND jday = $3`

	var rate entities.GoldRate
	err := r.db.GetContext(ctx, &rate, query, year, month, day)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrRateNotFound
		}
		return nil, fmt.Errorf("get gold rate by day: %w", err)
	}

	return &rate, nil
}

func (r *RateRepositoryImpl) GetLatest(ctx context.Context) (*entities.GoldRate, error) {
	defer observe(r.collector, "rate_get_latest", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, price_per_gram, source, created_at, updated_at
		FROM gold_rates
		ORDER BY jyear DESC, jmonth DESC, jday DESC
		LIMIT 1`

	var rate entities.GoldRate
	err := r.db.GetContext(ctx, &rate, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrRateNotFound
		}
		return nil, fmt.Errorf("get latest gold rate: %w", err)
	}

	return &rate, nil
}

func (r *RateRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]*entities.GoldRate, error) {
	defer observe(r.collector, "rate_list_month", metrics.NewTimer(nil))

	query := `
		SELECT id, jyear, jmonth, jday, price_per_gram, source, created_at, updated_at
		FROM gold_rates
		WHERE jyear = $1 AND jmonth = $2
		ORDER BY jday`

	var rates []*entities.GoldRate
	err := r.db.SelectContext(ctx, &rates, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("list gold rates by month: %w", err)
	}

	return rates, nil
}

func (r *RateRepositoryImpl) Delete(ctx context.Context, id int) error {
	defer observe(r.collector, "rate_delete", metrics.NewTimer(nil))

	query := `DELETE FROM gold_rates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete gold rate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrRateNotFound
	}

	return nil
}
