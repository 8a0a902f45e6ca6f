// Package inputval holds the form validation rules shared by the console's
// screens. Validation failures are caught before any backend call and the
// form is re-rendered with an inline error.
package inputval

import (
	"regexp"
	"strings"
)

// Password length floors. Login mirrors the account-creation era minimum;
// change-password enforces the stricter current rule.
const (
	MinLoginPassword = 6
	MinNewPassword   = 8
)

// MinAdminName is the minimum trimmed length for the admin name recorded on
// order status toggles.
const MinAdminName = 2

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address: a local part,
// an @, and a domain containing at least one dot.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidLoginPassword reports whether pw meets the sign-in length floor.
func ValidLoginPassword(pw string) bool {
	return len(pw) >= MinLoginPassword
}

// ValidNewPassword reports whether pw meets the change-password length floor.
func ValidNewPassword(pw string) bool {
	return len(pw) >= MinNewPassword
}

// ValidAdminName reports whether the trimmed name is long enough to record
// on an order status change.
func ValidAdminName(name string) bool {
	return len(strings.TrimSpace(name)) >= MinAdminName
}

// Required reports whether s has any non-blank content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsDigits reports whether s is one or more ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CountWords counts whitespace-separated words after trimming.
func CountWords(s string) int {
	fields := strings.Fields(s)
	return len(fields)
}

// WithinWordLimit reports whether s has at most max words. News titles are
// capped at 10 words and excerpts at 40.
func WithinWordLimit(s string, max int) bool {
	return CountWords(s) <= max
}
