package types

// Direction is one of the four cardinal headings, or None before the first move.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction to its unit step
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// DirectionOf interprets a unit vector as a Direction. Anything that is not a
// unit step maps to None.
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return Up
	case Point{X: 1, Y: 0}:
		return Right
	case Point{X: 0, Y: 1}:
		return Down
	case Point{X: -1, Y: 0}:
		return Left
	default:
		return None
	}
}
