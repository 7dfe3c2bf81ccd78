package system

import (
	"math"

	"github.com/milk9111/middlechamber/common"
	"github.com/milk9111/middlechamber/sim"
)

// PhysicsSystem moves the player: jump edges, horizontal movement, gravity,
// integration, world bounds, platform collisions, coyote time and the jump
// buffer, in that order.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	p := &w.Player
	spec := w.Tuning.Player
	in := w.Input

	if in.JumpPressed {
		jump(w, false)
	}
	if in.JumpReleased {
		cutJump(w)
	}

	if in.Left {
		p.Vel.X -= spec.Acceleration
		p.Facing = -1
	}
	if in.Right {
		p.Vel.X += spec.Acceleration
		p.Facing = 1
	}

	limit := spec.ConstrainedSpeed
	if w.Progress.Restored {
		limit = spec.MoveSpeed
	}
	p.Vel.X = common.Clamp(p.Vel.X, -limit, limit)
	p.Vel.X *= spec.Friction
	if math.Abs(p.Vel.X) < spec.StopEpsilon {
		p.Vel.X = 0
	}

	if w.FreeFly && in.JumpHeld {
		p.Vel.Y = -spec.FreeFlySpeed
	} else {
		p.Vel.Y += spec.Gravity
	}

	p.Pos = p.Pos.Add(p.Vel)

	clampX(w)
	resolveCollisions(p, w.Platforms)
	clampX(w)

	if p.Grounded {
		p.CoyoteTimer = spec.CoyoteFrames
	} else if p.CoyoteTimer > 0 {
		p.CoyoteTimer--
	}

	if p.Grounded && p.JumpBuffer > 0 {
		jump(w, true)
	}
	if p.JumpBuffer > 0 {
		p.JumpBuffer--
	}
}

// clampX keeps the player inside the world's horizontal bounds.
func clampX(w *sim.World) {
	p := &w.Player
	maxX := w.Level.World.Width - p.Width
	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X = 0
	}
	if p.Pos.X > maxX {
		p.Pos.X = maxX
		p.Vel.X = 0
	}
}
