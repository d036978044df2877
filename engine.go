package rowjoin

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/tuid"
	"golang.org/x/sync/errgroup"
)

// Source supplies component batches for an entity, already narrowed to the
// time or version being queried.
//
// Implementations report a missing component with *ErrComponentNotFound and
// must return batches whose row ids are sorted ascending without duplicates.
type Source interface {
	Fetch(ctx context.Context, entity core.EntityPath, name core.ComponentName) (*Batch, error)
}

// Request selects the components of one entity to join.
type Request struct {
	Entity core.EntityPath
	// Primary defines the rows of the resulting view.
	Primary core.ComponentName
	// Components are joined against Primary. Components the source does not
	// have are left out of the view.
	Components []core.ComponentName
}

// Engine builds entity views from a Source. It is safe for concurrent use.
type Engine struct {
	src  Source
	opts options
}

// NewEngine creates an engine reading from src.
func NewEngine(src Source, optFns ...Option) *Engine {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ids == nil {
		opts.ids = tuid.NewGenerator()
	}
	return &Engine{src: src, opts: opts}
}

// Query fetches the requested components and joins them into a view.
func (e *Engine) Query(ctx context.Context, req Request) (view *EntityView, err error) {
	start := time.Now()
	log := e.opts.logger.WithEntity(req.Entity).WithQueryID(e.opts.ids.Next())

	defer func() {
		rows, components := 0, 0
		if view != nil {
			rows, components = view.Len(), len(view.components)
		}
		e.opts.metricsCollector.RecordQuery(rows, components, time.Since(start), err)
		log.LogQuery(ctx, req.Primary, rows, components, err)
	}()

	ctrl := e.opts.controller
	if err := ctrl.AcquireQuery(ctx); err != nil {
		return nil, err
	}
	defer ctrl.ReleaseQuery()

	primary, err := e.fetch(ctx, req.Entity, req.Primary)
	if err != nil {
		return nil, err
	}

	view = FromPrimary(primary)
	for _, name := range req.Components {
		b, err := e.fetch(ctx, req.Entity, name)
		if err != nil {
			var nf *ErrComponentNotFound
			if errors.As(err, &nf) {
				log.LogSkippedComponent(ctx, name)
				continue
			}
			return nil, err
		}
		if view, err = view.WithComponent(b); err != nil {
			return nil, err
		}
	}

	return view, nil
}

// QueryMany runs one Query per request, at most WithParallelism at a time.
// Views are returned in request order. The first error cancels the rest.
func (e *Engine) QueryMany(ctx context.Context, reqs []Request) ([]*EntityView, error) {
	start := time.Now()
	views := make([]*EntityView, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.parallelism)
	for i, req := range reqs {
		g.Go(func() error {
			v, err := e.Query(gctx, req)
			if err != nil {
				return err
			}
			views[i] = v
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	if err != nil {
		failed = 1
	}
	e.opts.metricsCollector.RecordQueryMany(len(reqs), failed, time.Since(start))
	e.opts.logger.LogQueryMany(ctx, len(reqs), err)

	if err != nil {
		return nil, err
	}
	return views, nil
}

func (e *Engine) fetch(ctx context.Context, entity core.EntityPath, name core.ComponentName) (*Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := e.src.Fetch(ctx, entity, name)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &ErrComponentNotFound{Entity: entity, Component: name}
	}

	if err := e.opts.controller.CheckRows(b.Len()); err != nil {
		return nil, translateError(name, err)
	}
	if e.opts.validateRowIDs {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	return b, nil
}
