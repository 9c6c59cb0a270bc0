package manager

import (
	"raydemos/game/entity"
	"raydemos/game/types"

	"golang.org/x/exp/rand"
)

// maxRejections bounds the sampling loop before falling back to a scan of the
// free cells.
const maxRejections = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell not covered by the snake. It
// returns false when every cell is taken.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake != nil && snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxRejections; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Crowded board: draw from the free cells directly.
	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
