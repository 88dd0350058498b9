package ratelimit

// KeyPrefix namespaces limiter counters in redis
const KeyPrefix = "ratelimit:"

// Log messages
const (
	LogMsgRedisConnected = "Connected to redis for rate limiting"
	LogMsgLimitExceeded  = "Rate limit exceeded"
)
