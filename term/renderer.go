// Package term runs the snake game on a terminal through tcell.
package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"raydemos/game"
	"raydemos/game/types"
)

// Each grid cell is drawn two columns wide so the board looks square.
const cellWidth = 2

const (
	statusRows = 1
	borderSize = 1

	minGridWidth  = 10
	minGridHeight = 5
)

const (
	headRune = '@'
	bodyRune = 'o'
	foodRune = '*'
)

var ErrScreenTooSmall = errors.New("terminal too small")

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleHead    = styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBody    = styleDefault.Foreground(tcell.ColorLime)
	styleFood    = styleDefault.Foreground(tcell.ColorRed)
	styleTitle   = styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDim     = styleDefault.Foreground(tcell.ColorSilver)
	styleAlert   = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHigh    = styleDefault.Foreground(tcell.ColorYellow)
)

// GridFor returns the largest board that fits a screen of the given size.
func GridFor(screenWidth, screenHeight int) (types.Grid, error) {
	grid := types.Grid{
		Width:  (screenWidth - 2*borderSize) / cellWidth,
		Height: screenHeight - statusRows - 2*borderSize,
	}
	if grid.Width < minGridWidth || grid.Height < minGridHeight {
		return types.Grid{}, fmt.Errorf("%w: %dx%d, need room for a %dx%d board",
			ErrScreenTooSmall, screenWidth, screenHeight, minGridWidth, minGridHeight)
	}
	return grid, nil
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin is the screen position of the left column of grid cell p.
func CellOrigin(p types.Point) (x, y int) {
	return borderSize + p.X*cellWidth, statusRows + borderSize + p.Y
}

func (r *Renderer) Draw(g *game.Game) {
	r.screen.Fill(' ', styleDefault)

	switch g.State() {
	case game.Menu:
		r.drawMenu(g)
	case game.Playing:
		r.drawPlaying(g)
	case game.GameOver:
		r.drawGameOver(g)
	default:
		panic(fmt.Sprintf("term: unknown state %v", g.State()))
	}

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawCentered(y int, style tcell.Style, text string) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, style, text)
}

func (r *Renderer) drawMenu(g *game.Game) {
	_, h := r.screen.Size()
	top := h/2 - 3

	r.drawCentered(top, styleTitle, "SNAKE GAME")
	r.drawCentered(top+2, styleDefault, "Press SPACE or ENTER to Start")
	r.drawCentered(top+3, styleDim, "Use ARROW KEYS to move, q to quit")

	if g.HighScore() > 0 {
		r.drawCentered(top+5, styleHigh, fmt.Sprintf("High Score: %d", g.HighScore()))
	}
	if stats := g.GetStateManager(); stats.GetGamesPlayed() > 0 {
		r.drawCentered(top+6, styleDim,
			fmt.Sprintf("Games: %d  Avg: %.1f", stats.GetGamesPlayed(), stats.GetAverageScore()))
	}
}

func (r *Renderer) drawPlaying(g *game.Game) {
	r.drawText(0, 0, styleDefault, fmt.Sprintf("Score: %d", g.Score()))
	speed := fmt.Sprintf("Speed: %.2fx", g.SpeedMultiplier())
	w, _ := r.screen.Size()
	r.drawText(w-len(speed), 0, styleDim, speed)

	r.drawBorder(g.Grid())

	r.drawCell(g.GetFood(), foodRune, styleFood)
	snake := g.GetSnake()
	for i := len(snake.Body) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(snake.Body[i], headRune, styleHead)
		} else {
			r.drawCell(snake.Body[i], bodyRune, styleBody)
		}
	}
}

func (r *Renderer) drawBorder(grid types.Grid) {
	x1, y1 := 0, statusRows
	x2 := borderSize + grid.Width*cellWidth
	y2 := statusRows + borderSize + grid.Height

	for x := x1 + 1; x < x2; x++ {
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, y2, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y1 + 1; y < y2; y++ {
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(x2, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(x1, y1, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(x2, y1, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(x1, y2, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) drawCell(p types.Point, ch rune, style tcell.Style) {
	x, y := CellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawGameOver(g *game.Game) {
	_, h := r.screen.Size()
	top := h/2 - 4

	if g.Won() {
		r.drawCentered(top, styleTitle, "YOU WIN!")
	} else {
		r.drawCentered(top, styleAlert, "GAME OVER!")
	}
	r.drawCentered(top+2, styleDefault, fmt.Sprintf("Your Score: %d", g.Score()))
	if g.IsNewHighScore() {
		r.drawCentered(top+3, styleHigh, "NEW HIGH SCORE!")
	}
	r.drawCentered(top+5, styleDefault, "Press SPACE or ENTER to Play Again")
	r.drawCentered(top+6, styleDim, "Press ESC to go to Menu")
}
