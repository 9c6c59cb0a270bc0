package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"raydemos/game/entity"
	"raydemos/game/manager"
	"raydemos/game/types"
)

// State is the screen the game is on.
type State int

const (
	Menu State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is something that happened during an Update, for front-ends that want
// to react (sounds, animations).
type Event int

const (
	EventStarted Event = iota
	EventAte
	EventDied
	EventWon
	EventMenu
)

// Game owns one snake, its food and the menu/play/game-over state machine.
// It is driven by a single goroutine through Update.
type Game struct {
	cfg   types.Config
	state State

	snake     *entity.Snake
	food      types.Point
	score     int
	moveTimer float64
	moveDelay float64

	cause   manager.CollisionType
	won     bool
	newHigh bool

	roundID    uuid.UUID
	roundStart time.Time
	now        func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	log zerolog.Logger
}

// NewGame builds a game sitting on the menu. rng is used for food placement
// only.
func NewGame(cfg types.Config, rng *rand.Rand, logger zerolog.Logger) *Game {
	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		cfg:          cfg,
		state:        Menu,
		now:          time.Now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		log:          logger.With().Str("component", "snake").Logger(),
	}
	g.reset()
	return g
}

// reset lays out a fresh snake in the middle of the board heading right,
// places food and zeroes the score.
func (g *Game) reset() {
	g.score = 0
	g.moveTimer = 0
	g.moveDelay = g.cfg.MoveDelay(0)
	g.cause = manager.NoCollision
	g.won = false
	g.newHigh = false
	g.snake = entity.NewSnake(g.cfg.Grid.Center(), types.Right, g.cfg.InitialLength, g.cfg.Grid.Cells())
	g.placeFood()
}

func (g *Game) placeFood() bool {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if ok {
		g.food = food
	}
	return ok
}

// Update advances the game by dt seconds using the keys pressed this frame.
func (g *Game) Update(dt float64, in Input) []Event {
	switch g.state {
	case Menu:
		if in.IsKeyPressed(KeySpace) || in.IsKeyPressed(KeyEnter) {
			return g.startRound()
		}
		return nil
	case Playing:
		return g.updatePlaying(dt, in)
	case GameOver:
		if in.IsKeyPressed(KeySpace) || in.IsKeyPressed(KeyEnter) {
			return g.startRound()
		}
		if in.IsKeyPressed(KeyEscape) {
			g.transition(Menu)
			return []Event{EventMenu}
		}
		return nil
	default:
		panic(fmt.Sprintf("game: unknown state %v", g.state))
	}
}

func (g *Game) startRound() []Event {
	g.reset()
	g.roundID = uuid.New()
	g.roundStart = g.now()
	g.transition(Playing)
	return []Event{EventStarted}
}

func (g *Game) updatePlaying(dt float64, in Input) []Event {
	switch {
	case in.IsKeyPressed(KeyUp):
		g.snake.SetDirection(types.Up)
	case in.IsKeyPressed(KeyDown):
		g.snake.SetDirection(types.Down)
	case in.IsKeyPressed(KeyLeft):
		g.snake.SetDirection(types.Left)
	case in.IsKeyPressed(KeyRight):
		g.snake.SetDirection(types.Right)
	}

	g.moveDelay = g.cfg.MoveDelay(g.score)
	g.moveTimer += dt
	if g.moveTimer < g.moveDelay {
		return nil
	}
	// Surplus time past the threshold is dropped, not carried to the next tick.
	g.moveTimer = 0
	return g.tick()
}

// tick performs one discrete step of the simulation.
func (g *Game) tick() []Event {
	g.snake.Step()

	if cause := g.collisionMgr.CheckCollision(g.snake); cause != manager.NoCollision {
		g.endRound(cause, false)
		return []Event{EventDied}
	}

	if !g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		return nil
	}

	g.score++
	g.snake.Grow()
	if g.snake.Len() >= g.cfg.Grid.Cells() || !g.placeFood() {
		g.endRound(manager.NoCollision, true)
		return []Event{EventAte, EventWon}
	}
	return []Event{EventAte}
}

func (g *Game) endRound(cause manager.CollisionType, won bool) {
	g.cause = cause
	g.won = won
	g.newHigh = g.stateMgr.RecordRound(manager.RoundRecord{
		ID:        g.roundID,
		StartTime: g.roundStart,
		EndTime:   g.now(),
		Score:     g.score,
		Cause:     cause,
		Won:       won,
	})

	g.log.Info().
		Str("round", g.roundID.String()).
		Int("score", g.score).
		Int("length", g.snake.Len()).
		Stringer("cause", cause).
		Bool("won", won).
		Bool("new_high", g.newHigh).
		Msg("Round over")

	g.transition(GameOver)
}

func (g *Game) transition(to State) {
	g.log.Debug().
		Stringer("from", g.state).
		Stringer("to", to).
		Msg("State change")
	g.state = to
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Config() types.Config {
	return g.cfg
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// MoveDelay is the tick interval currently in effect, in seconds.
func (g *Game) MoveDelay() float64 {
	return g.moveDelay
}

// SpeedMultiplier is the speed shown on the HUD.
func (g *Game) SpeedMultiplier() float64 {
	return g.cfg.SpeedMultiplier(g.moveDelay)
}

// Won reports whether the last round ended with the board full.
func (g *Game) Won() bool {
	return g.won
}

// Cause is the collision that ended the last round.
func (g *Game) Cause() manager.CollisionType {
	return g.cause
}

// IsNewHighScore reports whether the last round matched the high score with a
// positive score.
func (g *Game) IsNewHighScore() bool {
	return g.score > 0 && g.score == g.stateMgr.GetHighScore()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
