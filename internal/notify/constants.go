package notify

// Supported event types
const (
	EventRegistration = "registration"
	EventGiftReceived = "gift_received"
	EventSaleStarted  = "sale_started"
)

// Embed colors (decimal RGB)
const (
	colorGreen  = 0x57F287
	colorBlue   = 0x5865F2
	colorOrange = 0xE67E22
)

// Metric result labels
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Log messages
const (
	LogMsgNotificationSent   = "Notification sent"
	LogMsgNotificationFailed = "Failed to send notification"
	LogMsgNotifierDisabled   = "Discord notifier disabled, no webhook configured"
)
