package system

import (
	"github.com/milk9111/middlechamber/common"
	"github.com/milk9111/middlechamber/sim"
)

// CameraSystem eases the view toward the player. The player sits centered
// horizontally and near the top of the view, with a vertical lead on speed.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	tx, ty := CameraTarget(w)
	spec := w.Tuning.Camera
	cam := &w.Camera
	cam.Pos.X = common.Lerp(cam.Pos.X, tx, spec.SmoothX)
	cam.Pos.Y = common.Lerp(cam.Pos.Y, ty, spec.SmoothY)
}

// CameraTarget is the unsmoothed camera position for the current frame.
func CameraTarget(w *sim.World) (float64, float64) {
	p := w.Player
	cam := w.Camera
	spec := w.Tuning.Camera
	lvl := w.Level

	tx := p.Pos.X - cam.ViewW/2 + p.Width/2
	if tx > lvl.World.Width-cam.ViewW {
		tx = lvl.World.Width - cam.ViewW
	}
	if tx < 0 {
		tx = 0
	}

	ty := p.Pos.Y - cam.ViewH*spec.TopFraction + p.Vel.Y*spec.LookAhead
	maxY := lvl.GroundY - cam.ViewH + spec.GroundMargin
	minY := -lvl.World.Height + cam.ViewH
	if ty > maxY {
		ty = maxY
	}
	if ty < minY {
		ty = minY
	}
	return tx, ty
}
