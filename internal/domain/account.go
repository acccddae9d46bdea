package domain

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 5

// Account represents a registered user.
// Password holds whatever the configured password scheme stores: the
// plaintext by default, or a hash.
type Account struct {
	ID       int64  `json:"accountId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateRegistration checks the fields a new account must satisfy:
// a non-blank username and a password longer than four characters.
func (a *Account) ValidateRegistration() error {
	if isBlank(a.Username) {
		return NewValidationError("username", "cannot be blank", ErrInvalidInput)
	}

	if utf8.RuneCountInString(a.Password) < MinPasswordLength {
		return NewValidationError("password", "must be longer than 4 characters", ErrInvalidInput)
	}

	return nil
}

// ValidateCredentials checks that neither login field is blank.
func ValidateCredentials(username, password string) error {
	if isBlank(username) {
		return NewValidationError("username", "cannot be blank", ErrInvalidInput)
	}
	if isBlank(password) {
		return NewValidationError("password", "cannot be blank", ErrInvalidInput)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
