package domain

import "unicode/utf8"

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 255

// Message is a short text posted by an account.
// PostedBy is zero when the author is unset.
type Message struct {
	ID              int64  `json:"messageId"`
	PostedBy        int64  `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}

// ValidateMessageText checks that text is non-blank and at most
// MaxMessageLength characters long.
func ValidateMessageText(text string) error {
	if isBlank(text) {
		return NewValidationError("messageText", "cannot be blank", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return NewValidationError("messageText", "must be at most 255 characters", ErrInvalidInput)
	}
	return nil
}
