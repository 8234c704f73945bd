package common

import (
	"strings"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/google/uuid"
)

// Player represents a player in a game
type Player struct {
	ID   string
	Name string
	// Hand holds cards in dealt order. Add cards only through Deal; a hand never shrinks.
	Hand []entities.Card
}

// NewPlayer creates a new player with the given name.
// Callers substitute a default before calling when the name is blank.
func NewPlayer(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.NewGameError(types.ErrInvalidName, "player name cannot be empty")
	}

	return &Player{
		ID:   uuid.New().String(),
		Name: name,
		Hand: make([]entities.Card, 0),
	}, nil
}

// Deal adds a card to the player's hand
func (p *Player) Deal(card entities.Card) {
	p.Hand = append(p.Hand, card)
}

// GetHand returns a copy of the player's hand in dealt order
func (p *Player) GetHand() []entities.Card {
	hand := make([]entities.Card, len(p.Hand))
	copy(hand, p.Hand)
	return hand
}

// HighestCard returns the best card in the player's hand
func (p *Player) HighestCard() (entities.Card, error) {
	if len(p.Hand) == 0 {
		return entities.Card{}, types.NewGameError(types.ErrEmptyHand, p.Name+" has no cards")
	}

	best := p.Hand[0]
	for _, card := range p.Hand[1:] {
		if best.Less(card) {
			best = card
		}
	}
	return best, nil
}

// Compare ranks two players by their highest card
func (p *Player) Compare(other *Player) (int, error) {
	mine, err := p.HighestCard()
	if err != nil {
		return 0, err
	}
	theirs, err := other.HighestCard()
	if err != nil {
		return 0, err
	}
	return mine.Compare(theirs), nil
}
