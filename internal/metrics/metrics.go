package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelItem},
	)

	Gifts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGifts,
			Help: HelpTextGifts,
		},
		[]string{LabelItem},
	)

	Grants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrants,
			Help: HelpTextGrants,
		},
		[]string{LabelItem},
	)

	Reclaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReclaims,
			Help: HelpTextReclaims,
		},
	)

	CurrencyCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyCredited,
			Help: HelpTextCurrencyCredited,
		},
	)

	CurrencyDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyDebited,
			Help: HelpTextCurrencyDebited,
		},
	)

	ItemsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCollected,
			Help: HelpTextItemsCollected,
		},
		[]string{LabelItem},
	)

	PlayersOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayersOnline,
			Help: HelpTextPlayersOnline,
		},
	)
)
