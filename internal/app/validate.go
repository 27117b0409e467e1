package app

import (
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/pscheid92/accountd/internal/errors"
)

// emailPattern is the single email-shape check used by both registration and
// login. It rejects whitespace and requires a dotted domain; full RFC 5322
// parsing is deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lowercases and trims an email so uniqueness checks and
// lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseID parses a route parameter into an account id. Non-numeric or
// non-positive input fails fast before any storage call, so a malformed id is
// a client error rather than a not-found.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationError("invalid account id").WithContext("id", raw)
	}
	return id, nil
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.ValidationError("email is required")
	}
	if !emailPattern.MatchString(email) {
		return apperrors.ValidationError("email is malformed").WithContext("email", email)
	}
	return nil
}

func validateRegistration(email, username, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if username == "" {
		return apperrors.ValidationError("username is required")
	}
	if password == "" {
		return apperrors.ValidationError("password is required")
	}
	return nil
}

// validateUpdate enforces the update-field policy: at least one field must be
// present, and a present field must be non-empty. Omitting a field means "no
// change"; an explicit empty string is an error, never "clear the value".
func validateUpdate(username, password *string) error {
	if username == nil && password == nil {
		return apperrors.ValidationError("nothing to update")
	}
	if username != nil && strings.TrimSpace(*username) == "" {
		return apperrors.ValidationError("username must not be empty")
	}
	if password != nil && *password == "" {
		return apperrors.ValidationError("password must not be empty")
	}
	return nil
}
