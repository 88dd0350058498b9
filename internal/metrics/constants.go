package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSpinsTotal          = "slot_spins_total"
	MetricNameSpinRejectionsTotal = "slot_spin_rejections_total"
	MetricNameCreditsWagered      = "slot_credits_wagered_total"
	MetricNameCreditsPaid         = "slot_credits_paid_total"
	MetricNameJackpotsTotal       = "slot_jackpots_total"
	MetricNameAccountsCreated     = "accounts_created_total"
	MetricNameDemoAccountsPurged  = "demo_accounts_purged_total"
	MetricNameSpinDuration        = "slot_spin_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSpinsTotal          = "Total number of settled spins"
	HelpTextSpinRejectionsTotal = "Total number of spins rejected before settlement"
	HelpTextCreditsWagered      = "Total credits wagered on spins"
	HelpTextCreditsPaid         = "Total credits paid out by spins"
	HelpTextJackpotsTotal       = "Total number of jackpot spins"
	HelpTextAccountsCreated     = "Total number of accounts created"
	HelpTextDemoAccountsPurged  = "Total number of expired demo accounts removed"
	HelpTextSpinDuration        = "Time to validate, draw and settle a spin in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMachine = "machine"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
	LabelKind    = "kind"
)

// Spin outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SpinLatencyBuckets covers in-memory spins (sub-millisecond) up to contended database settlements
var SpinLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, 1}
