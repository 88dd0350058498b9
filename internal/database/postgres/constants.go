package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation           = "23505"
	// PgErrorCodeInvalidTextRepresentation is raised for malformed UUID input
	PgErrorCodeInvalidTextRepresentation = "22P02"
)

// Unique index names from the accounts migration
const (
	ConstraintAccountsEmail    = "accounts_email_key"
	ConstraintAccountsUsername = "accounts_username_key"
)

// Tables and columns
const (
	tableAccounts     = "accounts"
	tableTransactions = "transactions"

	colID            = "id"
	colUsername      = "username"
	colEmail         = "email"
	colPasswordHash  = "password_hash"
	colBalance       = "balance"
	colTotalWinnings = "total_winnings"
	colTotalSpins    = "total_spins"
	colIsDemo        = "is_demo"
	colCreatedAt     = "created_at"

	colAccountID = "account_id"
	colType      = "type"
	colAmount    = "amount"
	colGame      = "game"
	colDetails   = "details"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToBuildQuery        = "failed to build query"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToInsertAccount       = "failed to insert account"
	ErrMsgFailedToGetAccount          = "failed to get account"
	ErrMsgFailedToGetAccountForUpdate = "failed to get account for update"
	ErrMsgFailedToUpdateAccount       = "failed to update account"
	ErrMsgFailedToDeleteDemoAccounts  = "failed to delete demo accounts"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToInsertTransaction = "failed to insert transaction"
	ErrMsgFailedToTrimTransactions  = "failed to trim transactions"
	ErrMsgFailedToQueryTransactions = "failed to query transactions"
	ErrMsgFailedToMarshalDetails    = "failed to marshal transaction details"
	ErrMsgFailedToUnmarshalDetails  = "failed to unmarshal transaction details"
	ErrMsgFailedToAggregateWins     = "failed to aggregate wins"
)
