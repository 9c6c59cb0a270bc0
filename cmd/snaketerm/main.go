package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"raydemos/game"
	"raydemos/game/types"
	"raydemos/sound"
	"raydemos/term"
)

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	screen, err := newScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start terminal")
	}

	grid, err := term.GridFor(screen.Size())
	if err != nil {
		screen.Fini()
		log.Fatal().Err(err).Msg("Failed to size board")
	}

	// Log lines would corrupt the screen while tcell owns it.
	logger := zerolog.New(io.Discard)

	cfg := types.DefaultConfig()
	cfg.Grid = grid
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g := game.NewGame(cfg, rng, logger)

	player := sound.NewPlayer(logger)

	term.NewApp(screen, g, logger, player).Run()

	screen.Fini()
	player.Close()

	stats := g.GetStateManager()
	log.Info().
		Int("games", stats.GetGamesPlayed()).
		Int("high_score", stats.GetHighScore()).
		Msg("Snake finished")
}
