package cache

import "strings"

const (
	GlobalKeyPrefix = "grammarlab"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// HintSessionKey builds the key under which one learner session's hint
// sequence is stored.
func HintSessionKey(sessionID string) string {
	return GenerateCacheKey("hints", "session", sessionID)
}
