package component

import "github.com/jakecoffman/cp"

// Player is the simulated body. Pos is the top-left corner in screen space
// (y grows downward).
type Player struct {
	Pos         cp.Vector
	Vel         cp.Vector
	Width       float64
	Height      float64
	Grounded    bool
	Facing      int
	JumpCount   int
	CoyoteTimer int
	JumpBuffer  int
}

func (p *Player) BB() cp.BB {
	return cp.BB{L: p.Pos.X, B: p.Pos.Y, R: p.Pos.X + p.Width, T: p.Pos.Y + p.Height}
}

func (p *Player) Center() cp.Vector {
	return cp.Vector{X: p.Pos.X + p.Width/2, Y: p.Pos.Y + p.Height/2}
}

// Feet is the y of the bottom edge.
func (p *Player) Feet() float64 {
	return p.Pos.Y + p.Height
}
