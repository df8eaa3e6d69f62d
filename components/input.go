package components

import (
	"github.com/automoto/firstperson/config/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus this frame's raw analog axes.
type InputData struct {
	Current         [input.ActionCount]bool
	Previous        [input.ActionCount]bool
	LastInputMethod InputMethod

	// Look is horizontal/vertical look in axis units, mouse and right stick combined.
	Look mgl64.Vec2
	// Move is strafe/forward, keys and left stick combined.
	Move mgl64.Vec2

	CursorCaptured bool
	cursorX        int
	cursorY        int
	cursorValid    bool
}

// CursorDelta records the cursor position and returns its movement since the
// last call. The first call after Reset returns zero.
func (i *InputData) CursorDelta(x, y int) (dx, dy int) {
	if i.cursorValid {
		dx, dy = x-i.cursorX, y-i.cursorY
	}
	i.cursorX, i.cursorY, i.cursorValid = x, y, true
	return dx, dy
}

// ResetCursor forgets the last cursor position, so a recapture does not jump the view.
func (i *InputData) ResetCursor() { i.cursorValid = false }

var Input = donburi.NewComponentType[InputData]()
