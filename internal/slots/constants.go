package slots

// Payout thresholds
const (
	JackpotMultiplier   = 500 // A winning line at or above this multiplier flags a jackpot
	DefaultSymbolWeight = 10  // Weight for symbols missing from the weight table
	PatternLength       = 3
)

// Payline indices in evaluation order
const (
	LineTopRow = iota
	LineMiddleRow
	LineBottomRow
	LineLeftColumn
	LineCenterColumn
	LineRightColumn
	LineMainDiagonal
	LineAntiDiagonal
	LineCount
)

// Trigger types for visual effects
const (
	TriggerLoss    = "loss"
	TriggerWin     = "win"
	TriggerBigWin  = "big_win"
	TriggerJackpot = "jackpot"
)

// BigWinMultiplier marks spins returning at least this many times the bet
const BigWinMultiplier = 50

// Log messages
const (
	LogMsgSpinCompleted      = "Spin completed"
	LogMsgSpinRejected       = "Spin rejected"
	LogMsgRateLimitCheckFail = "Rate limit check failed, allowing spin"
	LogMsgCatalogLoaded      = "Machine catalog loaded"
)

// Rejection reasons used as metric labels
const (
	RejectNotAuthenticated    = "not_authenticated"
	RejectInsufficientBalance = "insufficient_balance"
	RejectMachineNotFound     = "machine_not_found"
	RejectBetOutOfRange       = "bet_out_of_range"
	RejectRateLimited         = "rate_limited"
	RejectSettlementFailed    = "settlement_failed"
)

// RateLimitKeyPrefix namespaces per-account spin counters
const RateLimitKeyPrefix = "spin:"
