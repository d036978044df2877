package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrRowBudgetExceeded is returned by CheckRows when a batch is larger than
// Config.MaxBatchRows.
var ErrRowBudgetExceeded = errors.New("row budget exceeded")

// Config holds resource limits.
type Config struct {
	// MaxConcurrentQueries is the maximum number of queries running at once.
	// If 0, no limit is enforced.
	MaxConcurrentQueries int64

	// QueriesPerSec is the maximum rate at which queries are admitted.
	// If 0, unlimited.
	QueriesPerSec float64

	// Burst is the number of queries admitted at once above QueriesPerSec.
	// If 0, defaults to 1.
	Burst int

	// MaxBatchRows is the largest batch a query may join.
	// If 0, no limit is enforced.
	MaxBatchRows int
}

// Controller manages query admission.
type Controller struct {
	cfg Config

	// Concurrency
	querySem *semaphore.Weighted // nil if unlimited
	active   atomic.Int64

	// Rate
	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentQueries > 0 {
		c.querySem = semaphore.NewWeighted(cfg.MaxConcurrentQueries)
	}

	if cfg.QueriesPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.QueriesPerSec), cfg.Burst)
	}

	return c
}

// AcquireQuery waits for the rate limit and a free query slot.
// It blocks until both are available or ctx is canceled.
func (c *Controller) AcquireQuery(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.querySem != nil {
		if err := c.querySem.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	c.active.Add(1)
	return nil
}

// TryAcquireQuery takes a query slot without blocking.
// Returns true if acquired, false if the limits would be exceeded.
func (c *Controller) TryAcquireQuery() bool {
	if c == nil {
		return true
	}

	if c.querySem != nil && !c.querySem.TryAcquire(1) {
		return false
	}

	// Only spend a rate token once a slot is held.
	if c.limiter != nil && !c.limiter.Allow() {
		if c.querySem != nil {
			c.querySem.Release(1)
		}
		return false
	}

	c.active.Add(1)
	return true
}

// ReleaseQuery releases a slot taken by AcquireQuery or TryAcquireQuery.
func (c *Controller) ReleaseQuery() {
	if c == nil {
		return
	}

	if c.querySem != nil {
		c.querySem.Release(1)
	}
	c.active.Add(-1)
}

// ActiveQueries returns the number of queries currently admitted.
func (c *Controller) ActiveQueries() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// CheckRows reports whether a batch of n rows fits the row budget.
func (c *Controller) CheckRows(n int) error {
	if c == nil || c.cfg.MaxBatchRows <= 0 {
		return nil
	}
	if n > c.cfg.MaxBatchRows {
		return fmt.Errorf("%w: %d rows, limit %d", ErrRowBudgetExceeded, n, c.cfg.MaxBatchRows)
	}
	return nil
}
