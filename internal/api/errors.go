package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/social-api/internal/api/shared"
	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/service/auth"
)

// MapErrorToStatusCode maps service and domain errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message that can be shown to clients.
// Validation errors carry their own field-level message; everything else
// gets a fixed string so internal details never reach the response.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return "Invalid " + validationErr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError responds with the status and safe message for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError turns a validator error into a short message naming
// the first failing field, without exposing struct names.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return "Invalid " + domainErr.Error()
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
