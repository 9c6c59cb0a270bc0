package types

// Point is a grid cell, or a unit step when used as a direction vector.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell (rounded down).
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	ScreenWidth  = 1600
	ScreenHeight = 900
	CellSize     = 40

	InitialLength = 3

	BaseMoveDelay  = 0.06  // seconds between ticks at score 0
	MoveDelayDecay = 0.002 // seconds removed per point
	MinMoveDelay   = 0.05
	SpeedReference = 0.15 // delay shown as 1.00x
)

// Config holds the tuning values of a game. DefaultConfig matches the
// constants above.
type Config struct {
	Grid           Grid
	InitialLength  int
	BaseMoveDelay  float64
	MoveDelayDecay float64
	MinMoveDelay   float64
	SpeedReference float64
}

func DefaultConfig() Config {
	return Config{
		Grid:           Grid{Width: ScreenWidth / CellSize, Height: ScreenHeight / CellSize},
		InitialLength:  InitialLength,
		BaseMoveDelay:  BaseMoveDelay,
		MoveDelayDecay: MoveDelayDecay,
		MinMoveDelay:   MinMoveDelay,
		SpeedReference: SpeedReference,
	}
}

// MoveDelay returns the seconds between ticks for the given score. The delay
// shrinks linearly with score down to MinMoveDelay.
func (c Config) MoveDelay(score int) float64 {
	delay := c.BaseMoveDelay - float64(score)*c.MoveDelayDecay
	if delay < c.MinMoveDelay {
		return c.MinMoveDelay
	}
	return delay
}

// SpeedMultiplier is the on-screen speed factor for a delay.
func (c Config) SpeedMultiplier(delay float64) float64 {
	if delay <= 0 {
		return 0
	}
	return c.SpeedReference / delay
}
