package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(config.LoggerConfig{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	return log
}

func mustDate(t *testing.T, year, month, day int) jalali.Date {
	t.Helper()
	d, err := jalali.New(year, month, day)
	require.NoError(t, err)
	return d
}

// fixedClock pins the business day so preset and today tests are stable.
type fixedClock struct {
	today jalali.Date
}

func (c fixedClock) Now() time.Time {
	return c.today.ToTime(time.UTC)
}

func (c fixedClock) Today() jalali.Date {
	return c.today
}

type fakeTerminalRepo struct {
	terminals map[uuid.UUID]*entities.Terminal
}

func newFakeTerminalRepo() *fakeTerminalRepo {
	return &fakeTerminalRepo{terminals: make(map[uuid.UUID]*entities.Terminal)}
}

func (r *fakeTerminalRepo) Create(ctx context.Context, terminal *entities.Terminal) error {
	terminal.CreatedAt = time.Now()
	terminal.UpdatedAt = time.Now()
	r.terminals[terminal.ID] = terminal
	return nil
}

func (r *fakeTerminalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Terminal, error) {
	terminal, ok := r.terminals[id]
	if !ok || terminal.DeletedAt != nil {
		return nil, entities.ErrTerminalNotFound
	}
	return terminal, nil
}

func (r *fakeTerminalRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Terminal, error) {
	var out []*entities.Terminal
	for _, terminal := range r.terminals {
		if terminal.TenantID == tenantID && terminal.DeletedAt == nil {
			out = append(out, terminal)
		}
	}
	return out, nil
}

func (r *fakeTerminalRepo) Update(ctx context.Context, terminal *entities.Terminal) error {
	if _, ok := r.terminals[terminal.ID]; !ok {
		return entities.ErrTerminalNotFound
	}
	terminal.UpdatedAt = time.Now()
	r.terminals[terminal.ID] = terminal
	return nil
}

func (r *fakeTerminalRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	terminal, ok := r.terminals[id]
	if !ok {
		return entities.ErrTerminalNotFound
	}
	terminal.IsActive = false
	return nil
}

type fakeHolidayRepo struct {
	nextID   int
	holidays []*entities.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{nextID: 1}
}

func (r *fakeHolidayRepo) Create(ctx context.Context, holiday *entities.Holiday) error {
	for _, h := range r.holidays {
		if h.JYear == holiday.JYear && h.JMonth == holiday.JMonth && h.JDay == holiday.JDay && h.Title == holiday.Title {
			return entities.ErrHolidayExists
		}
	}
	holiday.ID = r.nextID
	r.nextID++
	holiday.CreatedAt = time.Now()
	r.holidays = append(r.holidays, holiday)
	return nil
}

func (r *fakeHolidayRepo) GetByID(ctx context.Context, id int) (*entities.Holiday, error) {
	for _, h := range r.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, entities.ErrHolidayNotFound
}

func (r *fakeHolidayRepo) ListByDay(ctx context.Context, year, month, day int) ([]*entities.Holiday, error) {
	var out []*entities.Holiday
	for _, h := range r.holidays {
		if h.JYear == year && h.JMonth == month && h.JDay == day {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) ListByMonth(ctx context.Context, year, month int) ([]*entities.Holiday, error) {
	var out []*entities.Holiday
	for _, h := range r.holidays {
		if h.JYear == year && h.JMonth == month {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) ListByYear(ctx context.Context, year int) ([]*entities.Holiday, error) {
	var out []*entities.Holiday
	for _, h := range r.holidays {
		if h.JYear == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Delete(ctx context.Context, id int) error {
	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return entities.ErrHolidayNotFound
}

type fakeRateRepo struct {
	nextID int
	rates  []*entities.GoldRate
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{nextID: 1}
}

func (r *fakeRateRepo) Upsert(ctx context.Context, rate *entities.GoldRate) error {
	for _, existing := range r.rates {
		if existing.JYear == rate.JYear && existing.JMonth == rate.JMonth && existing.JDay == rate.JDay {
			existing.PricePerGram = rate.PricePerGram
			existing.Source = rate.Source
			existing.UpdatedAt = time.Now()
			rate.ID = existing.ID
			return nil
		}
	}
	rate.ID = r.nextID
	r.nextID++
	rate.CreatedAt = time.Now()
	rate.UpdatedAt = rate.CreatedAt
	r.rates = append(r.rates, rate)
	return nil
}

func (r *fakeRateRepo) GetByDay(ctx context.Context, year, month, day int) (*entities.GoldRate, error) {
	for _, rate := range r.rates {
		if rate.JYear == year && rate.JMonth == month && rate.JDay == day {
			return rate, nil
		}
	}
	return nil, entities.ErrRateNotFound
}

func (r *fakeRateRepo) GetLatest(ctx context.Context) (*entities.GoldRate, error) {
	if len(r.rates) == 0 {
		return nil, entities.ErrRateNotFound
	}
	sorted := make([]*entities.GoldRate, len(r.rates))
	copy(sorted, r.rates)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.JYear != b.JYear {
			return a.JYear > b.JYear
		}
		if a.JMonth != b.JMonth {
			return a.JMonth > b.JMonth
		}
		return a.JDay > b.JDay
	})
	return sorted[0], nil
}

func (r *fakeRateRepo) ListByMonth(ctx context.Context, year, month int) ([]*entities.GoldRate, error) {
	var out []*entities.GoldRate
	for _, rate := range r.rates {
		if rate.JYear == year && rate.JMonth == month {
			out = append(out, rate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JDay < out[j].JDay })
	return out, nil
}

func (r *fakeRateRepo) Delete(ctx context.Context, id int) error {
	for i, rate := range r.rates {
		if rate.ID == id {
			r.rates = append(r.rates[:i], r.rates[i+1:]...)
			return nil
		}
	}
	return entities.ErrRateNotFound
}
