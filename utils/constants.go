// File: utils/constants.go
package utils

import "time"

// MatchCachePrefix is the prefix used for Redis match-result cache keys.
const MatchCachePrefix = "match:"

// MatchCacheTTL is the time-to-live for cached match results.
const MatchCacheTTL = 5 * time.Minute

// AuthTokenTTL is the lifetime of provider auth tokens issued at sign-in.
const AuthTokenTTL = 24 * time.Hour
