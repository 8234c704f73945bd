package entities

import (
	"math/rand"
	"time"

	"github.com/fadedpez/highcard/internal/types"
)

// DeckSize is the number of cards in a full deck, one per rank and suit
const DeckSize = (MaxRank - MinRank + 1) * len(suitOrder)

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new deck of 48 cards, one of each rank and suit,
// ordered by suit (Clubs first) and then by rank
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range suitOrder {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{rank: rank, suit: suit})
		}
	}

	return &Deck{
		cards: cards,
		// Create a new random source using current time as seed
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededDeck creates a full deck whose shuffles are reproducible for a seed
func NewSeededDeck(seed int64) *Deck {
	return NewDeck().WithRand(rand.New(rand.NewSource(seed)))
}

// NewDeckFromCards creates a deck holding cards in the given order
func NewDeckFromCards(cards []Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	copy(d.cards, cards)
	return d
}

// WithRand replaces the random source used by Shuffle
func (d *Deck) WithRand(rng *rand.Rand) *Deck {
	if rng != nil {
		d.rng = rng
	}
	return d
}

func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, types.NewGameError(types.ErrEmptyDeck, "no cards left to draw")
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns how many cards are left to draw
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
