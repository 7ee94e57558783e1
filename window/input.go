package window

import (
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
)

// input accumulates key and cursor events between polls. down is level
// state; pressed and the mouse delta are cleared by reset at the start of
// every frame.
type input struct {
	down    [core.KeyLast + 1]bool
	pressed [core.KeyLast + 1]bool

	mouse      mgl32.Vec2
	mouseDelta mgl32.Vec2
	seeded     bool
}

func validKey(k core.Key) bool { return k >= 0 && k <= core.KeyLast }

func (in *input) keyEvent(k core.Key, press, release bool) {
	if !validKey(k) {
		return
	}
	switch {
	case press:
		if !in.down[k] {
			in.pressed[k] = true
		}
		in.down[k] = true
	case release:
		in.down[k] = false
	}
}

// cursorEvent records a new cursor position. The first event only seeds the
// last position so the initial jump is not reported as motion.
func (in *input) cursorEvent(x, y float32) {
	pos := mgl32.Vec2{x, y}
	if in.seeded {
		in.mouseDelta = in.mouseDelta.Add(pos.Sub(in.mouse))
	}
	in.mouse = pos
	in.seeded = true
}

func (in *input) reset() {
	in.pressed = [core.KeyLast + 1]bool{}
	in.mouseDelta = mgl32.Vec2{}
}

func (in *input) keyDown(k core.Key) bool    { return validKey(k) && in.down[k] }
func (in *input) keyPressed(k core.Key) bool { return validKey(k) && in.pressed[k] }
