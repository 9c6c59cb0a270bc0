package term

import (
	"github.com/gdamore/tcell/v2"

	"raydemos/game"
)

var keyMap = map[tcell.Key]game.Key{
	tcell.KeyEnter:  game.KeyEnter,
	tcell.KeyEscape: game.KeyEscape,
	tcell.KeyUp:     game.KeyUp,
	tcell.KeyDown:   game.KeyDown,
	tcell.KeyLeft:   game.KeyLeft,
	tcell.KeyRight:  game.KeyRight,
}

func translateKey(ev *tcell.EventKey) (game.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return game.KeySpace, true
		}
		return 0, false
	}
	k, ok := keyMap[ev.Key()]
	return k, ok
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
