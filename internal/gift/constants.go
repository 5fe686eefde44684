package gift

// Log messages
const (
	LogMsgGiftCreated  = "Gift created"
	LogMsgGiftRedeemed = "Gift redeemed"
)
