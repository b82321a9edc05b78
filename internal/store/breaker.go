package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerSettings tunes the circuit breaker around catalog reads.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerStore fails catalog reads fast while the backing store is
// repeatedly erroring. It never retries.
type BreakerStore struct {
	next   CatalogStore
	cb     *gobreaker.CircuitBreaker[[]Material]
	logger *slog.Logger
}

func NewBreakerStore(next CatalogStore, settings BreakerSettings, logger *slog.Logger) *BreakerStore {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	b := &BreakerStore{next: next, logger: logger}
	b.cb = gobreaker.NewCircuitBreaker[[]Material](gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return b
}

func (b *BreakerStore) ListMaterials(ctx context.Context) ([]Material, error) {
	return b.cb.Execute(func() ([]Material, error) {
		return b.next.ListMaterials(ctx)
	})
}

// State reports the breaker state, e.g. "closed" or "open".
func (b *BreakerStore) State() string {
	return b.cb.State().String()
}

func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.next.Ping(ctx)
}

func (b *BreakerStore) Close() error {
	return b.next.Close()
}
