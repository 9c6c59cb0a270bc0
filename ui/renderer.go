package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"raydemos/anim"
	"raydemos/game"
	"raydemos/game/entity"
)

var (
	backgroundColor = rl.NewColor(40, 44, 52, 255)
	gridLineColor   = rl.NewColor(60, 64, 72, 255)
)

const eyeSize = 3

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32

	banner    *anim.Fade
	highPulse *anim.Pulse
}

func NewRenderer(cellSize int32) *Renderer {
	r := &Renderer{
		cellSize:  cellSize,
		banner:    anim.NewFade(0.4),
		highPulse: anim.NewPulse(1, 1.2, 0.8),
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Notify lets the renderer react to what happened in the last update.
func (r *Renderer) Notify(events []game.Event) {
	for _, e := range events {
		switch e {
		case game.EventDied, game.EventWon:
			r.banner.Restart()
			r.highPulse.Reset()
		}
	}
}

func (r *Renderer) Draw(g *game.Game, dt float32) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	switch g.State() {
	case game.Menu:
		r.drawMenu(g)
	case game.Playing:
		r.drawPlaying(g)
	case game.GameOver:
		r.drawGameOver(g, dt)
	default:
		panic(fmt.Sprintf("ui: unknown state %v", g.State()))
	}

	rl.EndDrawing()
}

// drawCentered draws text horizontally centered at y.
func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, r.screenWidth/2-width/2, y, fontSize, color)
}

func (r *Renderer) drawMenu(g *game.Game) {
	r.drawCentered("SNAKE GAME", 150, 60, rl.Green)
	r.drawCentered("Press SPACE or ENTER to Start", 300, 20, rl.White)
	r.drawCentered("Use ARROW KEYS to move", 350, 20, rl.LightGray)

	if g.HighScore() > 0 {
		r.drawCentered(fmt.Sprintf("High Score: %d", g.HighScore()), 450, 30, rl.Yellow)
	}

	stats := g.GetStateManager()
	if stats.GetGamesPlayed() > 0 {
		line := fmt.Sprintf("Games: %d  Avg: %.1f", stats.GetGamesPlayed(), stats.GetAverageScore())
		r.drawCentered(line, 500, 20, rl.LightGray)
	}
}

func (r *Renderer) drawPlaying(g *game.Game) {
	grid := g.Grid()
	for i := 0; i <= grid.Width; i++ {
		x := int32(i) * r.cellSize
		rl.DrawLine(x, 0, x, r.screenHeight, gridLineColor)
	}
	for i := 0; i <= grid.Height; i++ {
		y := int32(i) * r.cellSize
		rl.DrawLine(0, y, r.screenWidth, y, gridLineColor)
	}

	r.drawSnake(g.GetSnake())

	food := g.GetFood()
	rl.DrawCircle(
		int32(food.X)*r.cellSize+r.cellSize/2,
		int32(food.Y)*r.cellSize+r.cellSize/2,
		float32(r.cellSize/2-2),
		rl.Red)

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 10, 10, 30, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %.2fx", g.SpeedMultiplier()), r.screenWidth-150, 10, 20, rl.LightGray)
}

func (r *Renderer) drawSnake(snake *entity.Snake) {
	for i, p := range snake.Body {
		color := rl.Lime
		if i == 0 {
			color = rl.Green
		}
		rl.DrawRectangle(
			int32(p.X)*r.cellSize+2,
			int32(p.Y)*r.cellSize+2,
			r.cellSize-4,
			r.cellSize-4,
			color)
	}
	r.drawEyes(snake)
}

// drawEyes puts two dots on the leading edge of the head.
func (r *Renderer) drawEyes(snake *entity.Snake) {
	head := snake.GetHead()
	x := int32(head.X) * r.cellSize
	y := int32(head.Y) * r.cellSize
	near := r.cellSize / 4
	far := r.cellSize - near

	var e1, e2 rl.Vector2
	switch dir := snake.Direction; {
	case dir.X > 0:
		e1 = rl.NewVector2(float32(x+far), float32(y+near))
		e2 = rl.NewVector2(float32(x+far), float32(y+far))
	case dir.X < 0:
		e1 = rl.NewVector2(float32(x+near), float32(y+near))
		e2 = rl.NewVector2(float32(x+near), float32(y+far))
	case dir.Y < 0:
		e1 = rl.NewVector2(float32(x+near), float32(y+near))
		e2 = rl.NewVector2(float32(x+far), float32(y+near))
	case dir.Y > 0:
		e1 = rl.NewVector2(float32(x+near), float32(y+far))
		e2 = rl.NewVector2(float32(x+far), float32(y+far))
	default:
		return
	}
	rl.DrawCircleV(e1, eyeSize, rl.Black)
	rl.DrawCircleV(e2, eyeSize, rl.Black)
}

func (r *Renderer) drawGameOver(g *game.Game, dt float32) {
	alpha := r.banner.Update(dt)

	title, color := "GAME OVER!", rl.Red
	if g.Won() {
		title, color = "YOU WIN!", rl.Gold
	}
	r.drawCentered(title, 150, 60, rl.Fade(color, alpha))
	r.drawCentered(fmt.Sprintf("Your Score: %d", g.Score()), 250, 30, rl.White)

	if g.IsNewHighScore() {
		size := int32(25 * r.highPulse.Update(dt))
		r.drawCentered("NEW HIGH SCORE!", 300, size, rl.Yellow)
	}

	r.drawCentered("Press SPACE or ENTER to Play Again", 400, 20, rl.White)
	r.drawCentered("Press ESC to go to Menu", 450, 20, rl.LightGray)
}
