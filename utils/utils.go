package utils

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s looks like an email address. Matching is
// syntactic only; no deliverability check is made.
func ValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// NonEmpty reports whether every value is non-empty after trimming.
func NonEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
