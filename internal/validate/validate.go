package validate

import (
	"strconv"
	"strings"
)

// Coercion here is deliberately permissive: bad numeric input gets a safe
// default instead of a rejection.

// ProductID parses a positive integer id from a route or form value.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Price parses a decimal price, defaulting to 0 on absence or garbage.
func Price(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// Limit parses a list limit, clamped to def when unusable.
func Limit(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
