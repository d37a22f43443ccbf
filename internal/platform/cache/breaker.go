package cache

import (
	"context"
	"time"

	"github.com/rdmgray/eplpal/internal/platform/logging"
	"github.com/rdmgray/eplpal/internal/platform/resilience"
)

// BreakerBackend stops calling a failing backend until the breaker's open
// timeout elapses. Rejected calls return resilience.ErrCircuitOpen, which the
// Store treats like any other backend failure.
type BreakerBackend struct {
	next    Backend
	breaker *resilience.CircuitBreaker
}

func NewBreakerBackend(next Backend, cfg resilience.CircuitBreakerConfig, logger *logging.Logger) Backend {
	if !cfg.Enabled {
		return next
	}
	if logger == nil {
		logger = logging.Default()
	}
	cfg = resilience.NormalizeCircuitBreakerConfig(cfg)
	breaker := resilience.NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("cache circuit state changed", "from", from, "to", to)
	})
	return &BreakerBackend{next: next, breaker: breaker}
}

func (b *BreakerBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		raw []byte
		ok  bool
	)
	err := b.breaker.Execute(func() error {
		var err error
		raw, ok, err = b.next.Get(ctx, key)
		return err
	})
	return raw, ok, err
}

func (b *BreakerBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.breaker.Execute(func() error {
		return b.next.Set(ctx, key, value, ttl)
	})
}

func (b *BreakerBackend) DeletePrefix(ctx context.Context, prefix string) error {
	return b.breaker.Execute(func() error {
		return b.next.DeletePrefix(ctx, prefix)
	})
}

func (b *BreakerBackend) Close() error {
	return b.next.Close()
}

func (b *BreakerBackend) State() resilience.CircuitState {
	return b.breaker.State()
}
