package system

import (
	"github.com/milk9111/middlechamber/sim"
)

// jump runs one jump attempt. A press that can neither ground jump nor air
// jump arms the jump buffer instead.
func jump(w *sim.World, buffered bool) {
	p := &w.Player
	spec := w.Tuning.Player

	var kind sim.JumpKind
	switch {
	case p.Grounded || p.CoyoteTimer > 0:
		p.Vel.Y = -spec.JumpSpeed
		p.Grounded = false
		p.JumpCount = 1
		p.CoyoteTimer = 0
		p.JumpBuffer = 0
		kind = sim.JumpGround
		if buffered {
			kind = sim.JumpBuffered
		}
	case p.JumpCount < spec.MaxJumps:
		p.Vel.Y = -spec.JumpSpeed
		p.JumpCount++
		p.JumpBuffer = 0
		kind = sim.JumpAir
	default:
		p.JumpBuffer = spec.JumpBufferFrames
		return
	}

	w.Cue(sim.CueJump)
	w.Events.Push(sim.Event{Kind: sim.EventJump, Jump: kind, Value: p.JumpCount})
}

// cutJump shortens a rising jump when the key is released early.
func cutJump(w *sim.World) {
	p := &w.Player
	if p.Vel.Y < 0 && !w.FreeFly {
		p.Vel.Y *= w.Tuning.Player.JumpCutFactor
	}
}
