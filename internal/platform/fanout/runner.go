// Package fanout runs a batch of independent lookups on a shared worker pool
// and waits for every one of them before returning.
package fanout

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/rdmgray/eplpal/internal/platform/logging"
)

const DefaultWorkers = 16

type Runner struct {
	pool   *ants.Pool
	logger *logging.Logger
}

func NewRunner(workers int, logger *logging.Logger) (*Runner, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(false))
	if err != nil {
		return nil, errors.Wrap(err, "create fan-out pool")
	}

	return &Runner{pool: pool, logger: logger}, nil
}

func (r *Runner) Release() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Release()
}

// Each calls fn for every index in [0, n) and blocks until all calls have
// finished. The returned slice holds the error of each call at its index;
// a panicking call is reported as an error in its own slot.
func (r *Runner) Each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) []error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		task := func() {
			defer wg.Done()
			errs[i] = r.call(ctx, i, fn)
		}

		if r == nil || r.pool == nil {
			task()
			continue
		}
		if err := r.pool.Submit(task); err != nil {
			r.logger.WarnContext(ctx, "fan-out pool rejected task, running inline", "index", i, "error", err)
			task()
		}
	}

	wg.Wait()
	return errs
}

func (r *Runner) call(ctx context.Context, i int, fn func(ctx context.Context, i int) error) (err error) {
	var catcher panics.Catcher
	catcher.Try(func() {
		err = fn(ctx, i)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		return errors.Wrapf(recovered.AsError(), "fan-out task %d panicked", i)
	}
	return err
}
