package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no censored words loaded")

	// Identity
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidPassword    = fmt.Errorf("password does not satisfy complexity rules")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrAccountNotFound    = fmt.Errorf("account not found")

	// Store
	ErrDocumentNotFound = fmt.Errorf("document not found")
	ErrInvalidPath      = fmt.Errorf("invalid document path")
	ErrWriteFailed      = fmt.Errorf("write failed")
	ErrBlobNotFound     = fmt.Errorf("blob not found")
	ErrBlobTooLarge     = fmt.Errorf("blob exceeds maximum size")
	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")

	// Policy
	ErrNotAllowed       = fmt.Errorf("action not allowed")
	ErrCreatorProtected = fmt.Errorf("group creator cannot be removed or leave")
	ErrAlreadyMember    = fmt.Errorf("already a member of the group")
	ErrNotMember        = fmt.Errorf("not a member of the group")
	ErrSelfTarget       = fmt.Errorf("cannot target yourself")
	ErrNotSender        = fmt.Errorf("only the sender can delete a message")
	ErrUnknownPeer      = fmt.Errorf("unknown peer")

	// Input
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrEmptyMessage = fmt.Errorf("message is empty")
	ErrRateLimited  = fmt.Errorf("too many requests")
)

// Is and As re-export the standard helpers so callers only import this package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func New(text string) error { return errors.New(text) }

// messages holds the text shown to a user in the blocking notification
// that follows a failed mutation.
var messages = []struct {
	err     error
	status  int
	message string
}{
	{ErrInvalidCredentials, http.StatusUnauthorized, "Login failed: invalid email or password."},
	{ErrInvalidToken, http.StatusUnauthorized, "Your session has expired, please sign in again."},
	{ErrUserAlreadyExists, http.StatusConflict, "An account already exists for this email."},
	{ErrInvalidPassword, http.StatusBadRequest, "Password must be 12 to 72 characters with upper, lower, digit and special characters."},
	{ErrInvalidInput, http.StatusBadRequest, "The request is invalid."},
	{ErrEmptyMessage, http.StatusBadRequest, "Cannot send an empty message."},
	{ErrRateLimited, http.StatusTooManyRequests, "Too many attempts, please wait a moment."},
	{ErrUnsupportedMedia, http.StatusUnsupportedMediaType, "This file type is not supported."},
	{ErrBlobTooLarge, http.StatusRequestEntityTooLarge, "This file is too large."},
	{ErrCreatorProtected, http.StatusForbidden, "You are the creator of the group and cannot leave or be removed."},
	{ErrSelfTarget, http.StatusForbidden, "You cannot perform this action on yourself."},
	{ErrNotSender, http.StatusForbidden, "You can only delete your own messages."},
	{ErrNotAllowed, http.StatusForbidden, "You are not allowed to perform this action."},
	{ErrAlreadyMember, http.StatusConflict, "You are already a member of this group."},
	{ErrNotMember, http.StatusForbidden, "You are not a member of this group."},
	{ErrUnknownPeer, http.StatusNotFound, "This user does not exist."},
	{ErrDocumentNotFound, http.StatusNotFound, "Not found."},
	{ErrAccountNotFound, http.StatusNotFound, "No authenticated user found."},
	{ErrBlobNotFound, http.StatusNotFound, "File not found."},
	{ErrInvalidPath, http.StatusBadRequest, "The request is invalid."},
	{ErrTokenGeneration, http.StatusInternalServerError, "Something went wrong."},
	{ErrWriteFailed, http.StatusServiceUnavailable, "Something went wrong, please try again."},
}

// Message collapses err into the human-readable text surfaced to the user.
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return "Something went wrong."
}

// HTTPStatus maps err to the status code returned at the transport edge.
func HTTPStatus(err error) int {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
