package ledger

// Log messages
const (
	LogMsgSettled        = "Spin settled"
	LogMsgTrimmed        = "Trimmed transaction log"
	LogMsgBalanceChanged = "Balance changed before settlement"
)
