package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/sim"
)

// RespawnSystem returns a fallen player to the last checkpoint.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	p := &w.Player
	if p.Pos.Y <= w.Level.GroundY+w.Level.FallThreshold {
		return
	}

	p.Pos = w.Progress.Checkpoint.Respawn
	p.Vel = cp.Vector{}
	p.JumpCount = 0
	p.CoyoteTimer = 0
	p.JumpBuffer = 0
	p.Grounded = false

	rules := w.Tuning.Rules
	w.Events.Push(sim.Event{Kind: sim.EventRespawn})
	w.Events.Push(sim.Event{Kind: sim.EventShake, Frames: rules.ShakeFrames})
	w.Events.Push(sim.Event{Kind: sim.EventFlash, Frames: rules.FlashFrames, Text: "error"})
	w.Cue(sim.CueError)
	w.Logger().Info("respawn", "x", p.Pos.X, "y", p.Pos.Y)
}
