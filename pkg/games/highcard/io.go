package highcard

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/mock_io.go -package=mock_highcard

// Input supplies the player count and player names, usually from a person at a terminal
type Input interface {
	// PlayerCount returns the raw answer to "how many players"
	PlayerCount(ctx context.Context) (string, error)

	// PlayerName returns the name for the player at index (1-based); blank means "use the default"
	PlayerName(ctx context.Context, index int) (string, error)
}

// Output receives the human-readable lines the game produces
type Output interface {
	Println(line string) error
}

// Announcer is an Output that can highlight the winning line
type Announcer interface {
	Announce(line string) error
}
