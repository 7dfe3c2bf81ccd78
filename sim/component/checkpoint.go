package component

import "github.com/jakecoffman/cp"

// Checkpoint is passed once the player's x exceeds X.
type Checkpoint struct {
	X       float64
	Respawn cp.Vector
}
