package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/highcard/internal/config"
	"github.com/fadedpez/highcard/internal/console"
	"github.com/fadedpez/highcard/internal/logging"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/games/highcard"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		if inputEnded(err) {
			logging.Default.Warn("Input ended before the game could start, exiting")
		} else {
			logging.Default.LogError(err)
		}
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logging.Default = logger

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	deck := entities.NewDeck()
	if cfg.Seed != nil {
		logger.Debug("Using shuffle seed %d", *cfg.Seed)
		deck = entities.NewSeededDeck(*cfg.Seed)
	}

	// Stop waiting for input on CTRL-C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game := highcard.NewGame(
		highcard.WithDeck(deck),
		highcard.WithHandSize(cfg.HandSize),
		highcard.WithLogger(logger),
	)
	in := console.NewInput(os.Stdin)
	out := console.NewOutput(os.Stdout)

	if err := game.Start(ctx, in, out); err != nil {
		return err
	}
	_, _, err = game.Winner(out)
	return err
}

// inputEnded reports whether the player stopped answering rather than something breaking
func inputEnded(err error) bool {
	if !types.HasCode(err, types.ErrInputError) {
		return false
	}
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
