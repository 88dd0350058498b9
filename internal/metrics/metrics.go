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
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelMachine, LabelOutcome},
	)

	SpinRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinRejectionsTotal,
			Help: HelpTextSpinRejectionsTotal,
		},
		[]string{LabelReason},
	)

	CreditsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsWagered,
			Help: HelpTextCreditsWagered,
		},
		[]string{LabelMachine},
	)

	CreditsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsPaid,
			Help: HelpTextCreditsPaid,
		},
		[]string{LabelMachine},
	)

	JackpotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJackpotsTotal,
			Help: HelpTextJackpotsTotal,
		},
		[]string{LabelMachine},
	)

	AccountsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccountsCreated,
			Help: HelpTextAccountsCreated,
		},
		[]string{LabelKind},
	)

	DemoAccountsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDemoAccountsPurged,
			Help: HelpTextDemoAccountsPurged,
		},
	)

	SpinDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinDuration,
			Help:    HelpTextSpinDuration,
			Buckets: SpinLatencyBuckets,
		},
	)
)
