package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ESultanik/klondike/pkg/search"
)

// Collector implements search.Metrics with Prometheus instruments.
type Collector struct {
	expanded   prometheus.Counter
	duplicates prometheus.Counter
	frontier   prometheus.Gauge
	history    prometheus.Gauge
}

var _ search.Metrics = (*Collector)(nil)

// NewCollector builds a collector and registers its instruments with
// reg. Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		expanded: factory.NewCounter(prometheus.CounterOpts{
			Name: "klondike_search_nodes_expanded_total",
			Help: "Nodes popped from the frontier and expanded.",
		}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "klondike_search_duplicates_suppressed_total",
			Help: "Successor states dropped because an equal state was already visited.",
		}),
		frontier: factory.NewGauge(prometheus.GaugeOpts{
			Name: "klondike_search_frontier_size",
			Help: "Nodes currently awaiting expansion.",
		}),
		history: factory.NewGauge(prometheus.GaugeOpts{
			Name: "klondike_search_history_size",
			Help: "Distinct states generated in the current session.",
		}),
	}
}

// NodeExpanded counts one expansion.
func (c *Collector) NodeExpanded() { c.expanded.Inc() }

// DuplicateSuppressed counts one deduplicated successor.
func (c *Collector) DuplicateSuppressed() { c.duplicates.Inc() }

// FrontierSize records the current frontier size.
func (c *Collector) FrontierSize(n int) { c.frontier.Set(float64(n)) }

// HistorySize records the current history size.
func (c *Collector) HistorySize(n int) { c.history.Set(float64(n)) }
