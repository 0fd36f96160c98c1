package usecase

import (
	"errors"

	"movie-catalog/pkg/utils"
)

// Error kinds. Handlers pick the status code with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Messages returned to clients.
const (
	MsgMovieNotFound      = "Movie not found"
	MsgMovieExists        = "Similar Movie already exists, Contact Support to make complaints."
	MsgMovieUpdateDenied  = "You are not authorized to update this movie"
	MsgMovieDeleteDenied  = "You are not authorized to delete this movie"
	MsgNoResults          = "No results found"
	MsgAlreadyRated       = "You have already rated this movie"
	MsgRatingOutOfRange   = "Rating must be an integer between 1 and 9"
	MsgNoRatings          = "No ratings found for this movie"
	MsgCommentNotFound    = "Comment not found"
	MsgEmailExists        = "Email already exists"
	MsgUsernameExists     = "Username already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgIncorrectPassword  = "Incorrect password"
	MsgInvalidToken       = "Could not validate credentials"
	MsgUserNotFound       = "User not found"
	MsgValidationFailed   = "Validation failed"
)

// Error pairs a kind with the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Message returns the client-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
