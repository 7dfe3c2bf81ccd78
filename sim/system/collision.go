package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/sim/component"
)

// overlaps is a strict AABB test; touching edges do not overlap.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// resolveCollisions pushes the player out of every platform it overlaps, in
// list order. Each push can move the player clear of later platforms.
func resolveCollisions(p *component.Player, platforms []component.Platform) {
	p.Grounded = false
	for _, plat := range platforms {
		if !overlaps(p.BB(), plat.BB) {
			continue
		}

		pc := p.Center()
		qc := plat.Center()
		overlapX := (p.Width+plat.Width())/2 - math.Abs(pc.X-qc.X)
		overlapY := (p.Height+plat.Height())/2 - math.Abs(pc.Y-qc.Y)

		if overlapX < overlapY {
			if pc.X < qc.X {
				p.Pos.X = plat.BB.L - p.Width
			} else {
				p.Pos.X = plat.BB.R
			}
			p.Vel.X = 0
			continue
		}

		if pc.Y < qc.Y {
			p.Pos.Y = plat.BB.B - p.Height
			p.Grounded = true
			p.Vel.Y = 0
			p.JumpCount = 0
		} else {
			p.Pos.Y = plat.BB.T
			p.Vel.Y = 0
		}
	}
}
