package testing

import (
	"regexp"
	"strings"
	"time"
)

var (
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace converts all whitespace sequences to single spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}

// TimeController provides deterministic time for testing time-based behaviors.
type TimeController struct {
	current time.Time
}

// NewTimeController creates a new time controller with a fixed starting time.
func NewTimeController(start time.Time) *TimeController {
	return &TimeController{current: start}
}

// Now returns the current controlled time.
func (tc *TimeController) Now() time.Time {
	return tc.current
}

// Advance advances the controlled time by the specified duration.
func (tc *TimeController) Advance(d time.Duration) {
	tc.current = tc.current.Add(d)
}
