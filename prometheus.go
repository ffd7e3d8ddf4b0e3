package memoseq

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by a
// sequence or drainer.
//
// An instance can be created only by the [Prometheus] function. The zero
// value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the produced elements counter.
	ElementsProduced prometheus.CounterOpts
	// Options for the exhaustion probes counter.
	ExhaustionProbes prometheus.CounterOpts
	// Options for the allocated segments counter.
	SegmentsAllocated prometheus.CounterOpts
	// Options for the in-place segment reuses counter.
	SegmentReuses prometheus.CounterOpts
	// Options for the drained elements counter.
	ElementsDrained prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default parameters
// can be configured by passing configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "memoseq"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		ElementsProduced: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_produced",
			Help:      "Number of elements pulled from the producer",
		},
		ExhaustionProbes: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "exhaustion_probes",
			Help:      "Number of producer calls that reported exhaustion",
		},
		SegmentsAllocated: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segments_allocated",
			Help:      "Number of chain segments allocated",
		},
		SegmentReuses: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segment_reuses",
			Help:      "Number of in-place segment refills by exclusive drainers",
		},
		ElementsDrained: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_drained",
			Help:      "Number of elements removed by pops and drains",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		produced: prometheus.NewCounter(c.ElementsProduced),
		probes:   prometheus.NewCounter(c.ExhaustionProbes),
		segments: prometheus.NewCounter(c.SegmentsAllocated),
		reuses:   prometheus.NewCounter(c.SegmentReuses),
		drained:  prometheus.NewCounter(c.ElementsDrained),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.produced,
			m.probes,
			m.segments,
			m.reuses,
			m.drained,
		)
	}

	return &m
}

// metrics implements chain.Observer.
type metrics struct {
	produced prometheus.Counter
	probes   prometheus.Counter
	segments prometheus.Counter
	reuses   prometheus.Counter
	drained  prometheus.Counter
}

func (m *metrics) ElementProduced()  { m.produced.Inc() }
func (m *metrics) ExhaustionProbed() { m.probes.Inc() }
func (m *metrics) SegmentAllocated() { m.segments.Inc() }
func (m *metrics) SegmentReused()    { m.reuses.Inc() }
func (m *metrics) ElementDrained()   { m.drained.Inc() }
