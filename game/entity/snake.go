package entity

import (
	"raydemos/game/types"
)

// Snake is an ordered body with the head at index 0. Direction is applied on
// the current tick, NextDirection is the heading buffered from input for the
// next one.
type Snake struct {
	Body          []types.Point
	Direction     types.Point
	NextDirection types.Point

	capacity int
	lastTail types.Point
}

// NewSnake lays out length segments from head towards the tail, opposite to
// dir. capacity bounds how long the snake may grow.
func NewSnake(head types.Point, dir types.Direction, length, capacity int) *Snake {
	if length < 1 {
		length = 1
	}
	if capacity < length {
		capacity = length
	}

	step := dir.ToPoint()
	body := make([]types.Point, length, capacity)
	for i := range body {
		body[i] = types.Point{X: head.X - step.X*i, Y: head.Y - step.Y*i}
	}

	return &Snake{
		Body:          body,
		Direction:     step,
		NextDirection: step,
		capacity:      capacity,
		lastTail:      body[length-1],
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Capacity() int {
	return s.capacity
}

// Heading is the current direction as an enum value.
func (s *Snake) Heading() types.Direction {
	return types.DirectionOf(s.Direction)
}

// SetDirection buffers dir for the next tick. Turns are checked against the
// current direction, so a 180 degree turn is rejected even after another turn
// was buffered this tick. It reports whether dir was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	switch {
	case dir.Vertical() && s.Direction.Y != 0:
		return false
	case dir.Horizontal() && s.Direction.X != 0:
		return false
	case dir == types.None:
		return false
	}
	s.NextDirection = dir.ToPoint()
	return true
}

// Step applies the buffered direction and advances every segment into its
// predecessor's cell. The vacated tail cell is kept for Grow.
func (s *Snake) Step() {
	s.Direction = s.NextDirection
	s.lastTail = s.Body[len(s.Body)-1]

	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction)
}

// Grow appends a segment on the cell vacated by the last Step. It reports false
// when the snake is already at capacity.
func (s *Snake) Grow() bool {
	if len(s.Body) >= s.capacity {
		return false
	}
	s.Body = append(s.Body, s.lastTail)
	return true
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a cell with another segment.
func (s *Snake) HitsItself() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
