package repository

import (
	"github.com/zarinpos/core/internal/infrastructure/metrics"
)

// observe records the elapsed query time under queryType. Deferred with a
// timer started on method entry it covers the whole round trip, error
// returns included.
func observe(collector *metrics.Collector, queryType string, timer *metrics.Timer) {
	collector.ObserveDBQuery(queryType, timer.ObserveDuration().Seconds())
}
