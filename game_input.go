package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
)

const stickDeadzone = 0.2

// keyboardInput polls keyboard and the first gamepad. Jump edges use
// just-pressed state so key repeat never fires a second jump.
type keyboardInput struct{}

var _ sim.InputSource = keyboardInput{}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}

func (keyboardInput) Poll() component.Intents {
	var in component.Intents
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	for _, k := range jumpKeys {
		in.Jump = in.Jump || ebiten.IsKeyPressed(k)
		in.JumpPressed = in.JumpPressed || inpututil.IsKeyJustPressed(k)
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -stickDeadzone {
			in.Left = true
		} else if x > stickDeadzone {
			in.Right = true
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}

// pausePressed reports Escape or the gamepad start button.
func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

// freeFlyPressed reports the Ctrl+Alt+G debug chord.
func freeFlyPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) && ebiten.IsKeyPressed(ebiten.KeyAlt) &&
		inpututil.IsKeyJustPressed(ebiten.KeyG)
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// answerPressed returns the zero-based answer chosen with the number keys.
func answerPressed(n int) (int, bool) {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}
	for i := 0; i < n && i < len(keys); i++ {
		if inpututil.IsKeyJustPressed(keys[i]) {
			return i, true
		}
	}
	return 0, false
}
