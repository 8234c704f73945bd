package highcard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fadedpez/highcard/internal/logging"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/games/common"
	"github.com/google/uuid"
)

const (
	DefaultHandSize   = 3
	DefaultMinPlayers = 2
	DefaultMaxPlayers = 5
)

type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateFinished   State = "FINISHED"
)

// Game is a single round of high card. It is not safe for concurrent use.
type Game struct {
	ID      string
	deck    *entities.Deck
	players []*common.Player
	state   State

	handSize   int
	minPlayers int
	maxPlayers int
	logger     *logging.Logger
}

type Option func(*Game)

// WithDeck makes the game deal from deck instead of a fresh one
func WithDeck(deck *entities.Deck) Option {
	return func(g *Game) {
		if deck != nil {
			g.deck = deck
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithHandSize sets how many cards each player is dealt
func WithHandSize(size int) Option {
	return func(g *Game) {
		if size > 0 {
			g.handSize = size
		}
	}
}

// WithPlayerLimits sets the accepted player count range, inclusive
func WithPlayerLimits(min, max int) Option {
	return func(g *Game) {
		if min > 0 && max >= min {
			g.minPlayers = min
			g.maxPlayers = max
		}
	}
}

// NewGame creates a game with a fresh 48 card deck and no players
func NewGame(opts ...Option) *Game {
	g := &Game{
		ID:         uuid.New().String(),
		state:      StateNotStarted,
		handSize:   DefaultHandSize,
		minPlayers: DefaultMinPlayers,
		maxPlayers: DefaultMaxPlayers,
		logger:     logging.Default,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.deck == nil {
		g.deck = entities.NewDeck()
	}
	return g
}

func (g *Game) State() State {
	return g.state
}

// Players returns the players in join order, or ranked best first once finished
func (g *Game) Players() []*common.Player {
	players := make([]*common.Player, len(g.players))
	copy(players, g.players)
	return players
}

// Start collects the players, shuffles, deals and ranks the players.
// It keeps asking for a player count until one in range is given.
func (g *Game) Start(ctx context.Context, in Input, out Output) error {
	if g.state != StateNotStarted {
		return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("game %s already %s", g.ID, strings.ToLower(string(g.state))))
	}
	g.state = StateInProgress
	g.logger.Debug("Starting game %s", g.ID)

	n, err := g.readPlayerCount(ctx, in, out)
	if err != nil {
		return err
	}

	if err := g.say(out, "Starting game..."); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		if err := g.say(out, fmt.Sprintf("Enter name for player %d:", i)); err != nil {
			return err
		}
		name, err := in.PlayerName(ctx, i)
		if err != nil {
			return types.WrapError(types.ErrInputError, fmt.Sprintf("failed to read name for player %d", i), err)
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Player %d", i)
		}
		player, err := common.NewPlayer(name)
		if err != nil {
			return err
		}
		g.players = append(g.players, player)
		g.logger.Debug("Player %d joined as %s (%s)", i, player.Name, player.ID)
	}

	if err := g.say(out, "Shuffling deck..."); err != nil {
		return err
	}
	g.deck.Shuffle()

	if err := g.deal(); err != nil {
		return err
	}

	for _, player := range g.players {
		if err := g.say(out, player.Name+" has"); err != nil {
			return err
		}
		for _, card := range player.Hand {
			if err := g.say(out, card.String()); err != nil {
				return err
			}
		}
		if err := g.say(out, ""); err != nil {
			return err
		}
	}

	if err := g.rankPlayers(); err != nil {
		return err
	}

	g.state = StateFinished
	g.logger.Info("Game %s finished with %d players, %d cards left in deck", g.ID, len(g.players), g.deck.Remaining())
	return nil
}

// Winner returns the best ranked player and the card that won
func (g *Game) Winner(out Output) (*common.Player, entities.Card, error) {
	if g.state != StateFinished {
		return nil, entities.Card{}, types.NewGameError(types.ErrGameNotFinished, "game has not finished")
	}

	winner := g.players[0]
	card, err := winner.HighestCard()
	if err != nil {
		return nil, entities.Card{}, err
	}

	line := fmt.Sprintf("%s wins with card %s!", winner.Name, card)
	if a, ok := out.(Announcer); ok {
		if err := a.Announce(line); err != nil {
			return nil, entities.Card{}, types.WrapError(types.ErrOutputError, "failed to announce winner", err)
		}
	} else if err := g.say(out, line); err != nil {
		return nil, entities.Card{}, err
	}
	g.logger.Info("Game %s won by %s (%s)", g.ID, winner.Name, winner.ID)
	return winner, card, nil
}

func (g *Game) readPlayerCount(ctx context.Context, in Input, out Output) (int, error) {
	for {
		if err := g.say(out, "Enter number of players:"); err != nil {
			return 0, err
		}
		raw, err := in.PlayerCount(ctx)
		if err != nil {
			return 0, types.WrapError(types.ErrInputError, "failed to read number of players", err)
		}

		n := leadingInt(raw)
		if n >= g.minPlayers && n <= g.maxPlayers {
			return n, nil
		}

		g.logger.Debug("Rejected player count %q", raw)
		if err := g.say(out, fmt.Sprintf("Only %d-%d players are allowed", g.minPlayers, g.maxPlayers)); err != nil {
			return 0, err
		}
	}
}

// leadingInt reads the integer at the start of s, ignoring leading whitespace
// and anything after the digits. It returns 0 when there is no number.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// too large for an int, and far outside any player limit
		return 0
	}
	return n
}

// deal hands out cards one at a time round-robin in join order
func (g *Game) deal() error {
	for round := 0; round < g.handSize; round++ {
		for _, player := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing round %d to %s: %w", round+1, player.Name, err)
			}
			player.Deal(card)
		}
	}
	return nil
}

// rankPlayers orders players best first, keeping join order between equal cards
func (g *Game) rankPlayers() error {
	best := make(map[*common.Player]entities.Card, len(g.players))
	for _, player := range g.players {
		card, err := player.HighestCard()
		if err != nil {
			return err
		}
		best[player] = card
	}

	sort.SliceStable(g.players, func(i, j int) bool {
		return best[g.players[i]].Compare(best[g.players[j]]) > 0
	})
	return nil
}

func (g *Game) say(out Output, line string) error {
	if err := out.Println(line); err != nil {
		return types.WrapError(types.ErrOutputError, "failed to write output", err)
	}
	return nil
}
