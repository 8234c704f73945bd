package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedpez/highcard/internal/types"
)

// Suit represents a card suit

type Suit string

const (
	Clubs    Suit = "CLUBS"
	Spades   Suit = "SPADES"
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
)

// suitOrder lists the suits in increasing value
var suitOrder = [...]Suit{Clubs, Spades, Hearts, Diamonds}

// Suits returns all suits from lowest to highest
func Suits() []Suit {
	suits := make([]Suit, len(suitOrder))
	copy(suits, suitOrder[:])
	return suits
}

// RankOf returns the position of suit in the suit ordering, Clubs being 0
func RankOf(suit Suit) (int, error) {
	for i, s := range suitOrder {
		if s == suit {
			return i, nil
		}
	}
	return -1, types.NewGameError(types.ErrInvalidSuit, fmt.Sprintf("unknown suit %q", string(suit)))
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	_, err := RankOf(s)
	return err == nil
}

// Capitalized returns the suit name as shown to players, e.g. "Hearts"
func (s Suit) Capitalized() string {
	name := strings.ToLower(string(s))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

const (
	MinRank = 1
	MaxRank = 12
)

var rankNames = map[int]string{
	12: "King",
	11: "Queen",
	10: "Jack",
	1:  "Ace",
}

// Card represents a playing card. The zero value is not a valid card.

type Card struct {
	rank int
	suit Suit
}

// NewCard creates a new card, validating the suit and then the rank

func NewCard(rank int, suit Suit) (Card, error) {
	if !suit.Valid() {
		return Card{}, types.NewGameError(types.ErrInvalidSuit, fmt.Sprintf("unknown suit %q", string(suit)))
	}
	if rank < MinRank || rank > MaxRank {
		return Card{}, types.NewGameError(types.ErrInvalidRank,
			fmt.Sprintf("rank %d outside %d-%d", rank, MinRank, MaxRank))
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input
func MustCard(rank int, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() int {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Compare orders cards by rank, then by suit.
// It returns -1 if c is lower than other, 0 if equal and +1 if higher.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank < other.rank:
		return -1
	case c.rank > other.rank:
		return 1
	}

	// both suits come from NewCard, so the lookups cannot fail
	mine, _ := RankOf(c.suit)
	theirs, _ := RankOf(other.suit)
	switch {
	case mine < theirs:
		return -1
	case mine > theirs:
		return 1
	}
	return 0
}

func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// DisplayName returns the rank label: Ace, Jack, Queen, King or the number.
// Note that 10 is the Jack and 12 the King.
func (c Card) DisplayName() string {
	if name, ok := rankNames[c.rank]; ok {
		return name
	}
	return strconv.Itoa(c.rank)
}

// String returns the string representation of the card

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.DisplayName(), c.suit.Capitalized())
}
