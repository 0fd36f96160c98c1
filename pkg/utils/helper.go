package utils

import (
	"strconv"
)

// ParseInt converts string to int, falling back to defaultValue when the
// value is empty, malformed or below min.
func ParseInt(value string, defaultValue, min int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < min {
		return defaultValue
	}

	return result
}

// ParseID parses a positive path identifier.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
