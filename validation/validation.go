// Package validation holds the field rules applied before any record is
// persisted. Each function trims its input, checks one rule, and returns
// the normalized value with a message suitable for returning to the
// caller verbatim. The first failed rule wins; nothing is aggregated.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinTextLen and MaxTextLen bound every free-text name field
	// (project name, client, manager, company, contact).
	MinTextLen = 2
	MaxTextLen = 80

	// MaxBudget is the largest accepted budget value.
	MaxBudget = 999999999

	// MaxCommentLen bounds the optional report comment.
	MaxCommentLen = 300
)

// Project and report status enums. Stored values, not display labels.
var (
	ProjectStatuses = []string{"In Progress", "Completed", "Overdue"}
	ReportStatuses  = []string{"In Progress", "Delayed", "On Time"}
)

// DefaultProjectStatus is assigned to every newly created project.
const DefaultProjectStatus = "In Progress"

var (
	digitsRe     = regexp.MustCompile(`^\d+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// Text validates a required free-text field against the 2-80 rune
// bounds and returns the trimmed value. The label is used in the error
// message, e.g. "project name is too short".
func Text(label, value string) (string, error) {
	v := strings.TrimSpace(value)
	if len([]rune(v)) < MinTextLen {
		return "", fmt.Errorf("%s is too short (min %d characters)", label, MinTextLen)
	}
	if len([]rune(v)) > MaxTextLen {
		return "", fmt.Errorf("%s is too long (max %d characters)", label, MaxTextLen)
	}
	return v, nil
}

// Status checks enum membership after trimming.
func Status(value string, allowed []string) (string, error) {
	v := strings.TrimSpace(value)
	for _, s := range allowed {
		if v == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("status must be one of: %s", strings.Join(allowed, ", "))
}

// Percent parses a completion percentage. The input must be bare digits
// (no sign, no decimal point) and land in [0, 100].
func Percent(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if !digitsRe.MatchString(v) {
		return 0, fmt.Errorf("percent must be a whole number")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("percent must be a whole number")
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("percent must be between 0 and 100")
	}
	return n, nil
}

// Budget parses a budget amount. Internal whitespace is stripped first
// so "12 345" reads as 12345. The value must be positive and at most
// MaxBudget.
func Budget(raw string) (int64, error) {
	v := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if !digitsRe.MatchString(v) {
		return 0, fmt.Errorf("budget must be a number")
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("budget out of range")
	}
	if n <= 0 || n > MaxBudget {
		return 0, fmt.Errorf("budget out of range")
	}
	return n, nil
}

// FormatBudget renders the stored budget representation, the numeric
// value followed by the configured currency suffix.
func FormatBudget(n int64, suffix string) string {
	return fmt.Sprintf("%d %s", n, suffix)
}

// Email validates an address when present. Empty input is accepted;
// required-presence is checked separately per endpoint.
func Email(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}
	if !emailRe.MatchString(v) {
		return "", fmt.Errorf("invalid email address")
	}
	return v, nil
}

// Phone validates a phone number when present. Formatting characters
// are ignored; the digit count must be between 10 and 15.
func Phone(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}
	digits := nonDigitRe.ReplaceAllString(v, "")
	if len(digits) < 10 || len(digits) > 15 {
		return "", fmt.Errorf("invalid phone number")
	}
	return v, nil
}

// Comment validates the optional report comment.
func Comment(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if len([]rune(v)) > MaxCommentLen {
		return "", fmt.Errorf("comment is too long (max %d characters)", MaxCommentLen)
	}
	return v, nil
}

// Required rejects empty values with a per-field message.
func Required(label, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	return v, nil
}
