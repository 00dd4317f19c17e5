package helpers

import "time"

// ParseDuration parses a duration string, falling back to the default
// when the value is empty or malformed
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
