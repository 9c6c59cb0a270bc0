package manager

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"raydemos/game/entity"
	"raydemos/game/types"
)

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 22}
	cm := NewCollisionManager(grid)

	t.Run("single segment past right edge", func(t *testing.T) {
		s := entity.NewSnake(types.Point{X: grid.Width, Y: 4}, types.Right, 1, 10)
		if got := cm.CheckCollision(s); got != WallCollision {
			t.Errorf("CheckCollision = %v, want wall", got)
		}
	})

	t.Run("negative coordinates", func(t *testing.T) {
		for _, head := range []types.Point{{X: -1, Y: 3}, {X: 3, Y: -1}, {X: 3, Y: grid.Height}} {
			s := entity.NewSnake(head, types.Right, 1, 10)
			if got := cm.CheckCollision(s); got != WallCollision {
				t.Errorf("head %v: CheckCollision = %v, want wall", head, got)
			}
		}
	})

	t.Run("head on body[2]", func(t *testing.T) {
		s := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right, 4, 10)
		s.Body[0] = s.Body[2]
		if got := cm.CheckCollision(s); got != SelfCollision {
			t.Errorf("CheckCollision = %v, want self", got)
		}
	})

	t.Run("clear board", func(t *testing.T) {
		s := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right, 3, 10)
		if got := cm.CheckCollision(s); got != NoCollision {
			t.Errorf("CheckCollision = %v, want none", got)
		}
	})
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	s := entity.NewSnake(types.Point{X: 4, Y: 4}, types.Right, 3, 10)
	if !cm.IsFoodCollision(s, types.Point{X: 4, Y: 4}) {
		t.Error("food under the head should collide")
	}
	if cm.IsFoodCollision(s, types.Point{X: 3, Y: 4}) {
		t.Error("food under the body is not eaten")
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 4}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), cm)

	// Fill the top three rows, leaving the bottom one free.
	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Left, 1, grid.Cells())
	s.Body = s.Body[:0]
	for y := 0; y < 3; y++ {
		for x := 0; x < grid.Width; x++ {
			s.Body = append(s.Body, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(s)
		if !ok {
			t.Fatal("GenerateFood reported a full board")
		}
		if s.Occupies(food) {
			t.Fatalf("food %v placed on the snake", food)
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside the grid", food)
		}
	}
}

func TestGenerateFoodSingleFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm)

	free := types.Point{X: 2, Y: 1}
	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Left, 1, grid.Cells())
	s.Body = s.Body[:0]
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if p := (types.Point{X: x, Y: y}); p != free {
				s.Body = append(s.Body, p)
			}
		}
	}

	food, ok := fm.GenerateFood(s)
	if !ok || food != free {
		t.Fatalf("GenerateFood = %v, %v; want %v, true", food, ok, free)
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), NewCollisionManager(grid))

	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Left, 1, grid.Cells())
	s.Body = []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	if _, ok := fm.GenerateFood(s); ok {
		t.Fatal("GenerateFood on a full board should report false")
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if sm.GetHighScore() != 0 || sm.GetGamesPlayed() != 0 {
		t.Fatal("new manager should be empty")
	}
	if _, ok := sm.LastRound(); ok {
		t.Fatal("LastRound on empty history should report false")
	}

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rounds := []struct {
		score   int
		seconds int
		newHigh bool
	}{
		{score: 4, seconds: 10, newHigh: true},
		{score: 2, seconds: 20, newHigh: false},
		{score: 9, seconds: 30, newHigh: true},
		{score: 9, seconds: 40, newHigh: false},
	}
	for _, r := range rounds {
		rec := RoundRecord{
			ID:        uuid.New(),
			StartTime: start,
			EndTime:   start.Add(time.Duration(r.seconds) * time.Second),
			Score:     r.score,
			Cause:     WallCollision,
		}
		if got := sm.RecordRound(rec); got != r.newHigh {
			t.Errorf("RecordRound(score %d) = %v, want %v", r.score, got, r.newHigh)
		}
	}

	if sm.GetHighScore() != 9 {
		t.Errorf("GetHighScore = %d, want 9", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 4 {
		t.Errorf("GetGamesPlayed = %d, want 4", sm.GetGamesPlayed())
	}
	if got := sm.GetAverageScore(); math.Abs(got-6) > 1e-9 {
		t.Errorf("GetAverageScore = %v, want 6", got)
	}
	if got := sm.GetMedianScore(); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("GetMedianScore = %v, want 6.5", got)
	}
	if got := sm.GetAverageDuration(); math.Abs(got-25) > 1e-9 {
		t.Errorf("GetAverageDuration = %v, want 25", got)
	}
	last, _ := sm.LastRound()
	if last.Score != 9 || last.Duration() != 40*time.Second {
		t.Errorf("LastRound = %+v", last)
	}
}
