package component

import "github.com/jakecoffman/cp"

// Platform is a static rectangle. BB uses screen space: B is the top edge and
// T the bottom edge. Kind only affects drawing.
type Platform struct {
	BB   cp.BB
	Kind string
}

func NewPlatform(x, y, w, h float64, kind string) Platform {
	return Platform{BB: cp.BB{L: x, B: y, R: x + w, T: y + h}, Kind: kind}
}

func (p Platform) Width() float64 {
	return p.BB.R - p.BB.L
}

func (p Platform) Height() float64 {
	return p.BB.T - p.BB.B
}

func (p Platform) Center() cp.Vector {
	return cp.Vector{X: (p.BB.L + p.BB.R) / 2, Y: (p.BB.B + p.BB.T) / 2}
}
