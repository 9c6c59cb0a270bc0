package game

// Key is a key the game reacts to. Front-ends map their own key codes onto it.
type Key int

const (
	KeySpace Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Input reports edge-triggered key presses for the current frame.
type Input interface {
	IsKeyPressed(k Key) bool
}

// KeySet is an Input backed by a set of keys pressed this frame.
type KeySet map[Key]bool

func (ks KeySet) IsKeyPressed(k Key) bool {
	return ks[k]
}

// Press marks k as pressed.
func (ks KeySet) Press(k Key) {
	ks[k] = true
}

// Reset clears all presses, ready for the next frame.
func (ks KeySet) Reset() {
	for k := range ks {
		delete(ks, k)
	}
}
