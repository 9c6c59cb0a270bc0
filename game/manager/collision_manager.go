package manager

import (
	"raydemos/game/entity"
	"raydemos/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's head after a step. Walls are checked
// first.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if snake.HitsItself() {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if the head sits on food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food types.Point) bool {
	return snake.GetHead() == food
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
