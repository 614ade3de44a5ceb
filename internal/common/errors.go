// Package common defines shared constants and sentinel errors used across
// the CreatorPilot client layers. Callers should use errors.Is to match
// these values and errors.As to reach *ServerError details.
package common

import (
	"errors"
	"fmt"
)

// Error kinds. Every error surfaced to the user wraps exactly one of them.
var (
	// ErrValidation blocks an action locally; no request is sent.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication is a rejected login or register call.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRequest is a non-2xx answer to an authenticated call.
	ErrRequest = errors.New("request failed")

	// ErrNetwork is a transport failure or a malformed response body.
	ErrNetwork = errors.New("network error")

	// ErrDecode is a session token whose claims could not be read.
	ErrDecode = errors.New("token decode error")
)

// Validation errors.
var (
	ErrEmptyTranscript      = fmt.Errorf("%w: empty transcript", ErrValidation)
	ErrEmptyCredentials     = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrFileTooLarge         = fmt.Errorf("%w: file too large", ErrValidation)
	ErrUnsupportedFileType  = fmt.Errorf("%w: unsupported file type", ErrValidation)
	ErrGenerationInProgress = fmt.Errorf("%w: generation already in progress", ErrValidation)
	ErrNoResult             = fmt.Errorf("%w: nothing generated yet", ErrValidation)
	ErrForbidden            = fmt.Errorf("%w: admin or owner role required", ErrValidation)
	ErrOwnerLocked          = fmt.Errorf("%w: owner accounts cannot be changed", ErrValidation)
	ErrUnknownUser          = fmt.Errorf("%w: unknown user", ErrValidation)
	ErrUnknownRecord        = fmt.Errorf("%w: unknown history record", ErrValidation)
	ErrCancelled            = fmt.Errorf("%w: cancelled", ErrValidation)
	ErrNoBaseURL            = fmt.Errorf("%w: API base URL is not set", ErrValidation)
)

// ServerError is a failure reported by the backend. Message is the text the
// server sent in its "error" or "message" field, or a per-call fallback.
type ServerError struct {
	Kind    error
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Kind
}

// NoticeError attaches the exact text a notice should show to a sentinel.
type NoticeError struct {
	Err     error
	Message string
}

func (e *NoticeError) Error() string {
	return e.Message
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

// Notice wraps err so that UserMessage shows msg.
func Notice(err error, msg string) error {
	return &NoticeError{Err: err, Message: msg}
}

// UserMessage returns the text a notice should show for err. Server errors
// show the server message as-is; network errors collapse to one generic line.
func UserMessage(err error) string {
	var se *ServerError
	var ne *NoticeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &ne):
		return ne.Message
	case errors.Is(err, ErrNetwork):
		return "Network error"
	default:
		return err.Error()
	}
}
