package system

import (
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
)

// InputSystem polls the world's input source once per tick and derives the
// jump press and release edges.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	var intents component.Intents
	if src := w.Source(); src != nil {
		intents = src.Poll()
	}

	in := &w.Input
	prevHeld := in.JumpHeld
	pressed := intents.JumpPressed
	released := prevHeld && !intents.Jump

	if in.Suppressed {
		if !intents.Jump {
			in.Suppressed = false
		}
		pressed = false
		released = false
	}

	in.Left = intents.Left
	in.Right = intents.Right
	in.JumpHeld = intents.Jump
	in.JumpPressed = pressed
	in.JumpReleased = released
}
