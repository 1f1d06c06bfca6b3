// Package validation holds the pure field-level rules for signup and
// event-creation payloads. Every function is side-effect free and returns
// on the first failing rule.
package validation

import (
	"encoding/base64"
	"errors"
	"regexp"
	"time"
	"unicode"
)

const (
	MaxTitleLen = 50
	MaxVenueLen = 150

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s has a local@domain.tld shape.
// The domain part is matched case-insensitively by the character classes.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPassword requires at least 8 characters with at least one
// uppercase letter, one lowercase letter, one digit and one symbol.
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// ValidName requires a non-empty, strictly alphabetic name. No spaces,
// digits or punctuation; product decision, intentionally restrictive.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// EventFields is the validatable subset of a create_event payload.
type EventFields struct {
	Title       string
	Venue       string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	ImageBase64 string
}

// ValidateEventFields checks the event payload and returns the first
// failing rule as an error suitable for the response body.
func ValidateEventFields(f EventFields) error {
	if f.Title == "" {
		return errors.New("Title is required")
	}
	if len(f.Title) > MaxTitleLen {
		return errors.New("Title cannot exceed 50 characters")
	}
	if f.Venue == "" {
		return errors.New("Venue is required")
	}
	if len(f.Venue) > MaxVenueLen {
		return errors.New("Venue cannot exceed 150 characters")
	}
	if f.StartDate == "" || f.EndDate == "" || f.StartTime == "" || f.EndTime == "" {
		return errors.New("Start and end date/time are required")
	}

	startDate, err := time.Parse(dateLayout, f.StartDate)
	if err != nil {
		return errors.New("Invalid start date")
	}
	endDate, err := time.Parse(dateLayout, f.EndDate)
	if err != nil {
		return errors.New("Invalid end date")
	}
	startTime, err := time.Parse(timeLayout, f.StartTime)
	if err != nil {
		return errors.New("Invalid start time")
	}
	endTime, err := time.Parse(timeLayout, f.EndTime)
	if err != nil {
		return errors.New("Invalid end time")
	}

	// Dates are compared first; times only break a tie on equal dates.
	// Start must be strictly before end.
	if startDate.After(endDate) {
		return errors.New("Start date must be before end date")
	}
	if startDate.Equal(endDate) && !startTime.Before(endTime) {
		return errors.New("Start time must be before end time")
	}

	if f.ImageBase64 != "" {
		if _, err := base64.StdEncoding.DecodeString(f.ImageBase64); err != nil {
			return errors.New("Invalid image data")
		}
	}

	return nil
}
