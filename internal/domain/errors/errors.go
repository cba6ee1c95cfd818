// Package errors defines the application error model: typed errors carrying
// an HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"github.com/hatzenkracher/ipurchase/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are user-facing and German, matching the
// product's UI language.
var (
	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Gerät nicht gefunden",
		"",
	)

	ErrDeviceIDExists = NewBaseError(
		http.StatusConflict,
		"DEVICE_ID_EXISTS",
		"Geräte-ID existiert bereits",
		"",
	)

	ErrIMEIExists = NewBaseError(
		http.StatusConflict,
		"IMEI_EXISTS",
		"IMEI existiert bereits in der Datenbank",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Ungültiger Status",
		"",
	)

	ErrDeviceCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_CREATE_FAILED",
		"Fehler beim Erstellen des Geräts",
		"",
	)

	ErrDeviceUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_UPDATE_FAILED",
		"Fehler beim Aktualisieren des Geräts",
		"",
	)

	ErrStatusUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"STATUS_UPDATE_FAILED",
		"Fehler beim Aktualisieren des Status",
		"",
	)

	ErrDeviceDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_DELETE_FAILED",
		"Fehler beim Löschen des Geräts",
		"",
	)

	// User and authentication errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Benutzer nicht gefunden",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Benutzername ist bereits vergeben",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Benutzername oder Passwort ist falsch",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Passwort muss mindestens 6 Zeichen lang sein",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwörter stimmen nicht überein",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Ungültige E-Mail-Adresse",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Registrierung fehlgeschlagen",
		"",
	)

	// Company settings errors
	ErrCompanySettingsNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_SETTINGS_NOT_FOUND",
		"Firmendaten nicht gefunden",
		"",
	)

	ErrCompanySettingsSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"COMPANY_SETTINGS_SAVE_FAILED",
		"Fehler beim Speichern der Firmendaten",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected persistence failure as a
// generic internal error, keeping the cause in the details.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
