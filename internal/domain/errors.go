package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Spin errors
	ErrMsgNotAuthenticated    = "not authenticated"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgMachineNotFound     = "machine not found"
	ErrMsgBetOutOfRange       = "bet out of range"
	ErrMsgRateLimited         = "too many spins"

	// Account errors
	ErrMsgAccountNotFound    = "account not found"
	ErrMsgInvalidCredentials = "invalid email or password"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgUsernameTaken      = "username already taken"
	ErrMsgInvalidToken       = "invalid or expired token"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid machine catalog"

	// Database/System errors
	ErrMsgTxClosed      = "tx is closed"
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotAuthenticated    = errors.New(ErrMsgNotAuthenticated)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrMachineNotFound     = errors.New(ErrMsgMachineNotFound)
	ErrBetOutOfRange       = errors.New(ErrMsgBetOutOfRange)
	ErrRateLimited         = errors.New(ErrMsgRateLimited)

	ErrAccountNotFound    = errors.New(ErrMsgAccountNotFound)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrInvalidToken       = errors.New(ErrMsgInvalidToken)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
