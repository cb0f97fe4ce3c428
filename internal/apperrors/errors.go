// Package apperrors defines the error taxonomy of the game engine.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies recoverable, user-facing game errors.
type Kind int

const (
	// KindSyntax marks a malformed source or destination token, raised
	// before any resolution or mutation.
	KindSyntax Kind = iota
	// KindIllegalMove marks a well-formed request that violates the rules.
	KindIllegalMove
)

// GameError is a recoverable error whose message is shown to the player as-is.
type GameError struct {
	Kind    Kind
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Syntax builds a syntax error.
func Syntax(format string, args ...any) *GameError {
	return &GameError{Kind: KindSyntax, Message: fmt.Sprintf(format, args...)}
}

// Illegal builds an illegal-move error.
func Illegal(format string, args ...any) *GameError {
	return &GameError{Kind: KindIllegalMove, Message: fmt.Sprintf(format, args...)}
}

// IsSyntax reports whether err is a syntax error.
func IsSyntax(err error) bool {
	var ge *GameError
	return errors.As(err, &ge) && ge.Kind == KindSyntax
}

// IsIllegalMove reports whether err is an illegal-move error.
func IsIllegalMove(err error) bool {
	var ge *GameError
	return errors.As(err, &ge) && ge.Kind == KindIllegalMove
}

// ContractViolation marks a defect in the engine or its caller, such as
// reverting a move that is not the most recent one. It is delivered by panic
// and must never be shown as a gameplay message.
type ContractViolation struct {
	Reason string
}

func (e *ContractViolation) Error() string {
	return "contract violation: " + e.Reason
}

// Contract panics with a ContractViolation.
func Contract(format string, args ...any) {
	panic(&ContractViolation{Reason: fmt.Sprintf(format, args...)})
}
