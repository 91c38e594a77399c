package apperrors

import "net/http"

// Predefined errors for the marketplace domain. Services return these;
// the gin handler maps them to HTTP responses.

// ErrDuplicateEmail is returned when registering with an email that is
// already taken. The original API used 400 for this, not 409.
var ErrDuplicateEmail = New(
	CodeAlreadyExists,
	"account",
	"An account with this email already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials deliberately covers both "no such account" and
// "wrong password" so the response never leaks which one happened.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrMissingCredentials is returned when email or password is absent on login.
var ErrMissingCredentials = New(
	CodeValidationFailed,
	"auth",
	"Email and password are required",
	http.StatusBadRequest,
)

// ErrInvalidResetToken covers unknown, already-consumed and expired reset
// tokens alike.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

// ErrTooManyAttachments is returned when a request carries more reference
// pictures than the configured cap.
var ErrTooManyAttachments = New(
	CodeLimitExceeded,
	"content",
	"Too many attached files",
	http.StatusBadRequest,
)

// ErrNotFound wraps a repository not-found error into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}
