package utils

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ClampLimit keeps a page size within (0, MaxLimit].
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
