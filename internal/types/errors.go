package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Card and deck errors
	ErrInvalidRank ErrorCode = "INVALID_RANK"
	ErrInvalidSuit ErrorCode = "INVALID_SUIT"
	ErrEmptyDeck   ErrorCode = "EMPTY_DECK"

	// Player errors
	ErrInvalidName ErrorCode = "INVALID_NAME"
	ErrEmptyHand   ErrorCode = "EMPTY_HAND"

	// Game state errors
	ErrGameNotFinished ErrorCode = "GAME_NOT_FINISHED"
	ErrInvalidState    ErrorCode = "INVALID_STATE"

	// Collaborator and process errors
	ErrInputError    ErrorCode = "INPUT_ERROR"
	ErrOutputError   ErrorCode = "OUTPUT_ERROR"
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code.
// The outermost GameError in the chain decides.
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// HasCode reports whether any GameError in the chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var gameErr *GameError
		if !errors.As(err, &gameErr) {
			return false
		}
		if gameErr.Code == code {
			return true
		}
		err = gameErr.Err
	}
	return false
}

// As finds the first GameError in err's chain and stores it in target
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
