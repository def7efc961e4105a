package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zarinpos/core/internal/domain/entities"
)

// TerminalRepository defines the interface for terminal data operations
type TerminalRepository interface {
	Create(ctx context.Context, terminal *entities.Terminal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Terminal, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Terminal, error)
	Update(ctx context.Context, terminal *entities.Terminal) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// HolidayRepository defines the interface for holiday calendar operations
type HolidayRepository interface {
	Create(ctx context.Context, holiday *entities.Holiday) error
	GetByID(ctx context.Context, id int) (*entities.Holiday, error)
	ListByDay(ctx context.Context, year, month, day int) ([]*entities.Holiday, error)
	ListByMonth(ctx context.Context, year, month int) ([]*entities.Holiday, error)
	ListByYear(ctx context.Context, year int) ([]*entities.Holiday, error)
	Delete(ctx context.Context, id int) error
}

// RateRepository defines the interface for daily gold rate operations
type RateRepository interface {
	Upsert(ctx context.Context, rate *entities.GoldRate) error
	GetByDay(ctx context.Context, year, month, day int) (*entities.GoldRate, error)
	GetLatest(ctx context.Context) (*entities.GoldRate, error)
	ListByMonth(ctx context.Context, year, month int) ([]*entities.GoldRate, error)
	Delete(ctx context.Context, id int) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, key string) (bool, error)
}
