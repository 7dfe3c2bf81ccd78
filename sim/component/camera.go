package component

import "github.com/jakecoffman/cp"

// Camera is the top-left of the view in world space.
type Camera struct {
	Pos   cp.Vector
	ViewW float64
	ViewH float64
}
