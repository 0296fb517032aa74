// Package format holds pure invoice numbering helpers.
package format

import (
	"strconv"
	"strings"
)

// NextNumber suggests the number after the latest one issued.
// A "<prefix>-<n>" number increments its numeric suffix; anything else,
// including an empty history, falls back to the configured seed.
//
// This function is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
func NextNumber(last, fallback string) string {
	last = strings.TrimSpace(last)
	if last == "" {
		return fallback
	}

	parts := strings.Split(last, "-")
	if len(parts) != 2 {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fallback
	}

	return parts[0] + "-" + strconv.Itoa(n+1)
}
