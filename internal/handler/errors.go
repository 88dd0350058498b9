package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidFilterType = "Invalid type '%s'. Valid options: all, spin, win"

	// Auth error messages
	ErrMsgIssueTokenFailed = "Failed to issue session token"
)

// Success messages for API responses
const (
	MsgDemoStarted = "Demo session started"
)
