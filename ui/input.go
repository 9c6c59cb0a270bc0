package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"raydemos/game"
)

var keyMap = map[game.Key]int32{
	game.KeySpace:  rl.KeySpace,
	game.KeyEnter:  rl.KeyEnter,
	game.KeyEscape: rl.KeyEscape,
	game.KeyUp:     rl.KeyUp,
	game.KeyDown:   rl.KeyDown,
	game.KeyLeft:   rl.KeyLeft,
	game.KeyRight:  rl.KeyRight,
}

// Input reads key presses from the raylib window.
type Input struct{}

func (Input) IsKeyPressed(k game.Key) bool {
	code, ok := keyMap[k]
	return ok && rl.IsKeyPressed(code)
}
