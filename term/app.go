package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"raydemos/game"
)

const frameInterval = 16 * time.Millisecond

// EventHandler receives the events produced by each game update.
type EventHandler interface {
	Handle(events []game.Event)
}

type App struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *Renderer
	keys     game.KeySet
	handlers []EventHandler
	log      zerolog.Logger
}

func NewApp(screen tcell.Screen, g *game.Game, logger zerolog.Logger, handlers ...EventHandler) *App {
	return &App{
		screen:   screen,
		game:     g,
		renderer: NewRenderer(screen),
		keys:     make(game.KeySet),
		handlers: handlers,
		log:      logger.With().Str("component", "term").Logger(),
	}
}

// HandleEvent records a terminal event for the next frame.
// It reports false once the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if k, ok := translateKey(ev); ok {
			a.keys.Press(k)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Frame advances the game by dt seconds and redraws the screen.
func (a *App) Frame(dt float64) {
	events := a.game.Update(dt, a.keys)
	a.keys.Reset()

	for _, h := range a.handlers {
		h.Handle(events)
	}
	a.renderer.Draw(a.game)
}

// Run drives the game until the user quits.
func (a *App) Run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	a.renderer.Draw(a.game)

	for {
		select {
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				a.log.Debug().Msg("Quit requested")
				return
			}
		case now := <-ticker.C:
			a.Frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
