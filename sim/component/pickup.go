package component

import "github.com/jakecoffman/cp"

// Pickup is a working-tool collectible. Whether it is still active lives in
// Progression.Collected.
type Pickup struct {
	ID         int
	Pos        cp.Vector
	Radius     float64
	QuestionID int
	Name       string
	SpriteKey  string
	Blurb      string
}

// Virtue is one of the optional cardinal-virtue collectibles.
type Virtue struct {
	ID    int
	Name  string
	Blurb string
	Pos   cp.Vector
}
