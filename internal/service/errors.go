// Package service provides business logic implementation for the application.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDispatchFailed marks a gateway send failure. The message delivery
	// status records it; authority transitions are never rolled back.
	ErrDispatchFailed = errors.New("message dispatch failed")

	// ErrCollaboratorTimeout marks an unresponsive external collaborator.
	// The attempted action is treated as not having happened.
	ErrCollaboratorTimeout = errors.New("collaborator timed out")

	// ErrConversationNotActive is returned when a takeover or close targets
	// a conversation that is already terminal.
	ErrConversationNotActive = errors.New("conversation is not active")

	// ErrConversationNotFound is returned when no conversation matches an
	// inbound message or operator action.
	ErrConversationNotFound = errors.New("conversation not found")
)

// ValidationError describes a malformed inbound event field. Ingress rejects
// the event without state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err to a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
