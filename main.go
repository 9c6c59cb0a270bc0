package main

import (
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"raydemos/game"
	"raydemos/game/types"
	"raydemos/sound"
	"raydemos/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, "Raylib Snake Game")
	defer rl.CloseWindow()

	// Escape returns to the menu from the game-over screen, so it must not close the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g := game.NewGame(types.DefaultConfig(), rng, log.Logger)

	player := sound.NewPlayer(log.Logger)
	defer player.Close()

	renderer := ui.NewRenderer(types.CellSize)
	var input ui.Input

	log.Info().
		Int("width", g.Grid().Width).
		Int("height", g.Grid().Height).
		Msg("Snake started")

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		events := g.Update(float64(dt), input)
		player.Handle(events)
		renderer.Notify(events)

		renderer.Draw(g, dt)
	}
}
