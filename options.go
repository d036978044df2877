package rowjoin

import (
	"github.com/hupe1980/rowjoin/resource"
	"github.com/hupe1980/rowjoin/tuid"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	ids              *tuid.Generator
	validateRowIDs   bool
	parallelism      int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      4,
	}
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController bounds concurrent queries, query rate and batch size.
// Without a controller the engine admits everything.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithIDGenerator sets the generator used to tag queries. By default each
// engine owns a fresh generator.
func WithIDGenerator(g *tuid.Generator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// WithRowIDValidation makes the engine check that every fetched batch has
// strictly ascending row ids before joining it.
//
// Off by default: sources are trusted to deliver sorted row ids, and the
// check costs a pass over every batch.
func WithRowIDValidation(enabled bool) Option {
	return func(o *options) {
		o.validateRowIDs = enabled
	}
}

// WithParallelism sets how many entities QueryMany fetches at once.
// Values below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = max(n, 1)
	}
}
