package domain

import "strings"

// NormalizeTrackingNumber canonicalizes a user-entered tracking number.
// Tracking numbers are case-insensitive and whitespace-tolerant from the
// user's perspective; the backend stores them uppercase.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
