package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrEmptyDeck
	message := "no cards left to draw"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrInputError
	message := "failed to read player count"
	underlying := errors.New("stdin closed")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Wrapped error should unwrap to the cause")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrGameNotFinished, "game has not finished"),
			expected: "GAME_NOT_FINISHED: game has not finished",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrOutputError, "failed to write line", errors.New("broken pipe")),
			expected: "OUTPUT_ERROR: failed to write line (broken pipe)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	// Setup
	gameErr := NewGameError(ErrInvalidRank, "rank 13 out of range")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching game error",
			err:      gameErr,
			code:     ErrInvalidRank,
			expected: true,
		},
		{
			name:     "Non-matching game error",
			err:      gameErr,
			code:     ErrInvalidSuit,
			expected: false,
		},
		{
			name:     "Game error wrapped with fmt",
			err:      fmt.Errorf("building card: %w", gameErr),
			code:     ErrInvalidRank,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrInvalidRank,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrInvalidRank,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsGameError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsGameError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestHasCode() {
	inner := NewGameError(ErrEmptyDeck, "no cards left to draw")
	outer := WrapError(ErrInvalidState, "dealing failed", inner)

	s.True(HasCode(outer, ErrInvalidState))
	s.True(HasCode(outer, ErrEmptyDeck), "Inner code should be found through the chain")
	s.False(HasCode(outer, ErrEmptyHand))
	s.False(HasCode(errors.New("plain"), ErrEmptyDeck))
	s.False(HasCode(nil, ErrEmptyDeck))
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	gameErr := NewGameError(ErrEmptyHand, "hand is empty")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Game error",
			err:      gameErr,
			expected: true,
		},
		{
			name:     "Wrapped game error",
			err:      fmt.Errorf("ranking players: %w", gameErr),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *GameError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(gameErr, target, "Target should be set to the game error")
			}
		})
	}
}
