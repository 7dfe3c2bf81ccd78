package system

import (
	"github.com/milk9111/middlechamber/sim"
)

// CheckpointSystem advances the respawn point. It only ever moves right.
type CheckpointSystem struct{}

func NewCheckpointSystem() *CheckpointSystem { return &CheckpointSystem{} }

func (s *CheckpointSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	x := w.Player.Pos.X
	rules := w.Tuning.Rules
	for i, c := range w.Checkpoints {
		if x <= c.X || c.X <= w.Progress.Checkpoint.X {
			continue
		}

		w.Progress.Checkpoint = c
		w.Progress.Passed = i + 1
		text := w.Narrator().CheckpointReached(i+1, len(w.Checkpoints))
		w.CheckpointPopup.Show(text, w.Frame, rules.CheckpointPopupFrames)
		w.Cue(sim.CueLore)
		w.Events.Push(sim.Event{Kind: sim.EventCheckpoint, ID: i + 1, Text: text})
		w.Events.Push(sim.Event{Kind: sim.EventFlash, Frames: rules.FlashFrames, Text: "checkpoint"})
		w.Logger().Info("checkpoint", "index", i+1, "x", c.X)
	}
}
