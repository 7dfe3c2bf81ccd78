package system

import "github.com/milk9111/middlechamber/sim"

// ExpirySystem drops notices whose deadline has passed.
type ExpirySystem struct{}

func NewExpirySystem() *ExpirySystem { return &ExpirySystem{} }

func (s *ExpirySystem) Update(w *sim.World) {
	if w == nil {
		return
	}
	if w.Warning.Text != "" && !w.Warning.Visible(w.Frame) {
		w.Warning.Clear()
	}
	if w.CheckpointPopup.Text != "" && !w.CheckpointPopup.Visible(w.Frame) {
		w.CheckpointPopup.Clear()
	}
}
