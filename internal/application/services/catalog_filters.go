package services

import (
	"strings"
	"time"
)

// Clock returns the current instant. Services take one so that the
// "upcoming" and "active" views can be evaluated against a fixed time.
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time { return time.Now() }

// filterRows keeps the rows for which keep returns true. The result is never
// nil so it always renders as a JSON array.
func filterRows[T any](rows []*T, keep func(*T) bool) []*T {
	result := make([]*T, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// containsFold reports whether needle occurs in haystack ignoring case
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchesAnyFold reports whether needle occurs in any of fields ignoring case
func matchesAnyFold(needle string, fields ...string) bool {
	for _, field := range fields {
		if containsFold(field, needle) {
			return true
		}
	}
	return false
}

// cityExact matches city exactly; an empty filter matches every city
func cityExact(filter, city string) bool {
	return filter == "" || filter == city
}

// cityFold matches city ignoring case; an empty filter matches every city
func cityFold(filter, city string) bool {
	return filter == "" || strings.EqualFold(filter, city)
}
