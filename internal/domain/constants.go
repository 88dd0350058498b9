package domain

import "time"

// Starting balances
const (
	RegisteredStartingBalance = 500
	DemoStartingBalance       = 1000
)

// Demo account identity
const (
	DemoUsernamePrefix = "DemoPlayer"
	DemoEmailDomain    = "casino.local"
)

// Session and retention windows
const (
	DefaultTokenTTL   = 24 * time.Hour
	DefaultDemoTTL    = 24 * time.Hour
	LeaderboardWindow = 24 * time.Hour
	LeaderboardSize   = 10
	DailyStatsDays    = 7
	RankNotPresent    = -1
	MinPasswordLength = 6
	MaxUsernameLength = 32
)
