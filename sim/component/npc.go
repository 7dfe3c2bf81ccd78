package component

import "github.com/jakecoffman/cp"

type NPC struct {
	Role      string
	Name      string
	SpriteKey string
	Pos       cp.Vector
}
