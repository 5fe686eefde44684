package metrics

// Metric Names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameLootboxOpens        = "lootbox_opens_total"
	MetricNameLootboxItemsWon     = "lootbox_items_won_total"
	MetricNameBonusPointsCredited = "bonus_points_credited_total"
	MetricNamePromoCodesApplied   = "promo_codes_applied_total"
	MetricNameGiftsCreated        = "gifts_created_total"
	MetricNameGiftsRedeemed       = "gifts_redeemed_total"
	MetricNameNotificationsSent   = "discord_notifications_sent_total"
)

// Help Texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextLootboxOpens        = "Total number of successful lootbox opens"
	HelpTextLootboxItemsWon     = "Total number of items won, by item type"
	HelpTextBonusPointsCredited = "Total bonus points credited from discount items"
	HelpTextPromoCodesApplied   = "Total number of promo code applications"
	HelpTextGiftsCreated        = "Total number of gifts created"
	HelpTextGiftsRedeemed       = "Total number of gifts redeemed"
	HelpTextNotificationsSent   = "Total Discord notifications sent, by event type and result"
)

// Label Names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelBox    = "box"
	LabelType   = "type"
	LabelCode   = "code"
	LabelResult = "result"
)

// HTTPLatencyBuckets covers the expected storefront latency range
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
