package stats

import "time"

// LeaderboardCacheTTL is how long a computed ranking is served before recomputation
const LeaderboardCacheTTL = 30 * time.Second

// leaderboardCacheKey is the single key of the ranking cache
const leaderboardCacheKey = "ranking"

// Decimal places for percentages and averages
const percentPlaces = 2

// DateLayout formats daily stat dates
const DateLayout = "2006-01-02"

// Log messages
const (
	LogMsgLeaderboardComputed = "Leaderboard computed"
)
