package main

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"raydemos/ball"
)

// updateDrawFrame advances the ball one frame and draws it.
func updateDrawFrame(s ball.State, b ball.Bounds) ball.State {
	s = ball.Advance(s, b)

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)
	rl.DrawText("My Raylib Web Game", 10, 10, 20, rl.LightGray)
	rl.DrawCircleV(rl.NewVector2(float32(s.Position[0]), float32(s.Position[1])), float32(s.Radius), rl.Maroon)
	rl.DrawFPS(10, 40)
	rl.EndDrawing()

	return s
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rl.InitWindow(ball.ScreenWidth, ball.ScreenHeight, "Raylib Web Example")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	state := ball.NewState()
	bounds := ball.DefaultBounds()
	log.Info().Msg("Ball demo started")

	for !rl.WindowShouldClose() {
		state = updateDrawFrame(state, bounds)
	}
}
