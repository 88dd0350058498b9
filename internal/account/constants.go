package account

import "time"

// Cache configuration
const (
	// CacheSchemaVersion is bumped when the cached entry layout changes
	CacheSchemaVersion = "1.0"
	DefaultCacheSize   = 4096
	DefaultCacheTTL    = 5 * time.Minute
)

// demoSuffixLength is the number of id characters appended to demo usernames
const demoSuffixLength = 8

// Log messages
const (
	LogMsgAccountRegistered = "Account registered"
	LogMsgDemoStarted       = "Demo account started"
	LogMsgLoginFailed       = "Login failed"
	LogMsgDemoPurged        = "Expired demo accounts purged"
)

// Metric label values
const (
	KindRegistered = "registered"
	KindDemo       = "demo"
)
