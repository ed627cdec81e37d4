package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePurchases        = "premium_purchases_total"
	MetricNameGifts            = "premium_gifts_total"
	MetricNameGrants           = "premium_grants_total"
	MetricNameReclaims         = "premium_reclaims_total"
	MetricNameCurrencyCredited = "premium_currency_credited_total"
	MetricNameCurrencyDebited  = "premium_currency_debited_total"
	MetricNameItemsCollected   = "world_items_collected_total"
	MetricNamePlayersOnline    = "players_online"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPurchases        = "Total number of premium item purchases"
	HelpTextGifts            = "Total number of premium item gifts"
	HelpTextGrants           = "Total number of admin premium item grants"
	HelpTextReclaims         = "Total number of reclaim operations"
	HelpTextCurrencyCredited = "Total premium currency credited to wallets"
	HelpTextCurrencyDebited  = "Total premium currency debited from wallets"
	HelpTextItemsCollected   = "Total number of world items collected"
	HelpTextPlayersOnline    = "Current number of online players"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
