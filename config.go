package memoseq

import (
	"github.com/memoseq/memoseq/internal/chain"
)

// DefaultBlockSize is the segment capacity used when [WithBlockSize] is not
// given.
const DefaultBlockSize = 32

type Option[E any] = func(*config[E])

// WithBlockSize sets the fixed capacity of every segment in the chain. Small
// blocks keep lazy consumers lazy; large blocks amortize producer calls.
func WithBlockSize[E any](size int) Option[E] {
	if size < 1 {
		panic("block size can't be < 1")
	}
	return func(c *config[E]) {
		c.blockSize = size
	}
}

// WithMetrics enables the Prometheus instruments described by pc.
func WithMetrics[E any](pc *PrometheusConfig) Option[E] {
	if pc == nil {
		panic("prometheus config can't be nil")
	}
	return func(c *config[E]) {
		c.metrics = pc.metrics()
	}
}

type config[E any] struct {
	blockSize int
	metrics   *metrics
}

func newConfig[E any](options ...Option[E]) *config[E] {
	options = append([]Option[E]{
		WithBlockSize[E](DefaultBlockSize),
	}, options...)

	cfg := config[E]{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}

func (c *config[E]) observer() chain.Observer {
	if c.metrics == nil {
		return chain.NopObserver{}
	}
	return c.metrics
}

func (c *config[E]) elementDrained() {
	if c.metrics != nil {
		c.metrics.ElementDrained()
	}
}
