package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AdvanceRequestsTotal      *prometheus.CounterVec
	ParticipantsAdvancedTotal *prometheus.CounterVec
	NotFoundIdentifiersTotal  prometheus.Counter
	AdvanceDuration           prometheus.Histogram
	RosterRowsParsedTotal     prometheus.Counter
	StatsCacheHitsTotal       prometheus.Counter
	StatsCacheMissesTotal     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		AdvanceRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recruitdesk_advance_requests_total",
			Help: "Total number of bulk round advancement requests",
		}, []string{"domain", "outcome"}),
		ParticipantsAdvancedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recruitdesk_participants_advanced_total",
			Help: "Total number of participant slots advanced",
		}, []string{"domain"}),
		NotFoundIdentifiersTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recruitdesk_advance_not_found_identifiers_total",
			Help: "Total number of requested registration numbers that matched no record",
		}),
		AdvanceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "recruitdesk_advance_duration_seconds",
			Help:    "Duration of bulk round advancements",
			Buckets: prometheus.DefBuckets,
		}),
		RosterRowsParsedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recruitdesk_roster_rows_parsed_total",
			Help: "Total number of roster rows parsed from uploads",
		}),
		StatsCacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recruitdesk_stats_cache_hits_total",
			Help: "Total number of dashboard stat reads served from cache",
		}),
		StatsCacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recruitdesk_stats_cache_misses_total",
			Help: "Total number of dashboard stat reads that missed the cache",
		}),
	}
}

// ObserveAdvance records one advancement request. Callers hold a possibly
// nil *Metrics; every recorder is nil-safe so tests skip registration.
func (m *Metrics) ObserveAdvance(domain, outcome string, updated, notFound int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if domain == "" {
		domain = "all"
	}
	m.AdvanceRequestsTotal.WithLabelValues(domain, outcome).Inc()
	m.ParticipantsAdvancedTotal.WithLabelValues(domain).Add(float64(updated))
	m.NotFoundIdentifiersTotal.Add(float64(notFound))
	m.AdvanceDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) AddRosterRows(n int) {
	if m == nil {
		return
	}
	m.RosterRowsParsedTotal.Add(float64(n))
}

func (m *Metrics) RecordStatsCacheHit() {
	if m == nil {
		return
	}
	m.StatsCacheHitsTotal.Inc()
}

func (m *Metrics) RecordStatsCacheMiss() {
	if m == nil {
		return
	}
	m.StatsCacheMissesTotal.Inc()
}
