package services

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/logger"
)

// SystemClock implements ports.Clock on the wall clock in the configured
// timezone. If the zone cannot be loaded from the host's tz database it
// falls back to the bundled Iran zone, so containers without tzdata still
// report the right business day.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock for the configured timezone.
func NewSystemClock(cfg config.CalendarConfig, log *logger.Logger) *SystemClock {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warnw("Timezone not found, falling back to Iran zone",
			"timezone", cfg.Timezone, "error", err)
		loc = ptime.Iran()
	}
	return &SystemClock{loc: loc}
}

// Now returns the current instant in the configured timezone.
func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today returns the Jalali day the current instant falls on.
func (c *SystemClock) Today() jalali.Date {
	return jalali.FromTime(c.Now())
}
