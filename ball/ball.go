package ball

import (
	"golang.org/x/image/math/f64"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 450
	Radius       = 20
)

// Bounds is the area the ball bounces inside.
type Bounds struct {
	Width, Height float64
}

// State is the ball's position and per-frame velocity, in pixels.
type State struct {
	Position f64.Vec2
	Velocity f64.Vec2
	Radius   float64
}

// NewState places the ball at the middle of the default screen moving down
// and to the right.
func NewState() State {
	return State{
		Position: f64.Vec2{ScreenWidth / 2, ScreenHeight / 2},
		Velocity: f64.Vec2{5, 4},
		Radius:   Radius,
	}
}

func DefaultBounds() Bounds {
	return Bounds{Width: ScreenWidth, Height: ScreenHeight}
}

// Advance moves the ball by one frame of velocity. An axis whose new
// coordinate is within Radius of either edge has its velocity negated. The
// position is not corrected, so the ball may overshoot an edge by up to one
// frame of travel.
func Advance(s State, b Bounds) State {
	limits := f64.Vec2{b.Width, b.Height}
	for axis := range s.Position {
		s.Position[axis] += s.Velocity[axis]
		if s.Position[axis] >= limits[axis]-s.Radius || s.Position[axis] <= s.Radius {
			s.Velocity[axis] = -s.Velocity[axis]
		}
	}
	return s
}
