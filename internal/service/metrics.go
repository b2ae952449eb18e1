package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	placements   *prometheus.CounterVec
	accessLookup *prometheus.CounterVec
}

// NewMetrics registers the domain counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		placements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shelf_placements_total",
				Help: "Product placement attempts by result.",
			},
			[]string{"result"},
		),
		accessLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "access_cache_lookups_total",
				Help: "Access decision lookups by cache result.",
			},
			[]string{"result"},
		),
	}
	for _, c := range []prometheus.Collector{m.placements, m.accessLookup} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) placement(result string) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(result).Inc()
}

func (m *Metrics) accessLookupResult(result string) {
	if m == nil {
		return
	}
	m.accessLookup.WithLabelValues(result).Inc()
}
