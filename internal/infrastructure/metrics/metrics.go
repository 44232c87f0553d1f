package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/bankview/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Fetch metrics
	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Account metrics
	TransactionsAdded *prometheus.CounterVec
	AccountBalance    prometheus.Gauge
	Logins            prometheus.Counter

	// Cache metrics
	CacheLookups *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankview_fetches_total",
				Help: "Total remote collection fetches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankview_fetch_duration_seconds",
				Help:    "Duration of remote collection fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),

		TransactionsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankview_transactions_added_total",
				Help: "Total manually added transactions by kind",
			},
			[]string{"kind"},
		),
		AccountBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bankview_account_balance",
			Help: "Current derived account balance",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "bankview_logins_total",
			Help: "Total mock logins",
		}),

		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankview_cache_lookups_total",
				Help: "Fetch cache lookups by kind and result",
			},
			[]string{"kind", "result"},
		),
	}
}

// ObserveFetch records one fetch attempt.
func (m *Metrics) ObserveFetch(kind domain.Kind, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Fetches.WithLabelValues(string(kind), outcome).Inc()
	m.FetchDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

// TransactionAdded records a manual addition.
func (m *Metrics) TransactionAdded(kind domain.Kind) {
	m.TransactionsAdded.WithLabelValues(string(kind)).Inc()
}

// UserLoggedIn records a mock login.
func (m *Metrics) UserLoggedIn() {
	m.Logins.Inc()
}

// BalanceChanged publishes the latest balance.
func (m *Metrics) BalanceChanged(balance decimal.Decimal) {
	m.AccountBalance.Set(balance.InexactFloat64())
}

// CacheLookup records a fetch cache hit or miss.
func (m *Metrics) CacheLookup(kind domain.Kind, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(string(kind), result).Inc()
}
