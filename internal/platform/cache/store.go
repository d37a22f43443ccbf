package cache

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"

	"github.com/rdmgray/eplpal/internal/platform/logging"
)

// Backend stores encoded values by key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

type Store struct {
	backend Backend
	ttl     time.Duration
	flight  singleflight.Group
	logger  *logging.Logger
}

func NewStore(backend Backend, ttl time.Duration, logger *logging.Logger) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		backend: backend,
		ttl:     ttl,
		logger:  logger,
	}
}

func (s *Store) DeletePrefix(ctx context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}
	return s.backend.DeletePrefix(ctx, prefix)
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// GetOrLoad returns the cached value for key, or calls loader once for all
// concurrent callers and caches its result. Backend failures degrade to a
// direct load.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, errors.New("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := lookup[T](ctx, s, key); ok {
		return value, nil
	}

	result, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := lookup[T](ctx, s, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.store(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, errors.Newf("cached value for key=%s has unexpected type %T", key, result)
	}
	return value, nil
}

func lookup[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var value T
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return value, false
	}
	if !ok {
		return value, false
	}
	if err := sonic.Unmarshal(raw, &value); err != nil {
		s.logger.WarnContext(ctx, "cache decode failed", "key", key, "error", err)
		return value, false
	}
	return value, true
}

func (s *Store) store(ctx context.Context, key string, value any) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.backend.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}
