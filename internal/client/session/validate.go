package session

import (
	"strings"
	"unicode"

	"github.com/mentormatch/mentorauth/internal/common"
)

const minPasswordLength = 8

// passwordSymbols is the punctuation set a password must draw at least one
// character from.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidateCredentials runs the local preconditions checked before any
// network call: a non-empty login name and a password meeting the strength
// policy. The first violated rule is returned as a FieldError.
func ValidateCredentials(username string, password string) error {
	if strings.TrimSpace(username) == "" {
		return common.NewFieldError("username", "must not be empty")
	}
	return ValidatePassword(password)
}

// ValidatePassword enforces the password strength policy: minimum length 8,
// at least one uppercase letter, one digit, and one symbol from
// passwordSymbols.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return common.NewFieldError("password", "must be at least 8 characters")
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		return common.NewFieldError("password", "must contain an uppercase letter")
	}
	if !hasDigit {
		return common.NewFieldError("password", "must contain a digit")
	}
	if !hasSymbol {
		return common.NewFieldError("password", "must contain a symbol")
	}
	return nil
}
