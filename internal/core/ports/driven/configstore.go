package driven

// ConfigStore reads and writes settings by flattened dot key, such as
// "history.lookback_days". Typed getters return the zero value when a key
// is missing or holds another type, so callers fall back to defaults.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int

	// GetStringSlice accepts both []string and decoded []any lists.
	GetStringSlice(key string) []string

	// Set stores value under key and persists it before returning.
	Set(key string, value any) error
}
