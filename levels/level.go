package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NPC roles. Each level places exactly one NPC per role.
const (
	RoleIdentity    = "identity"
	RoleInvestiture = "investiture"
	RoleStaircase   = "staircase"
	RoleGoal        = "goal"
)

var requiredRoles = []string{RoleIdentity, RoleInvestiture, RoleStaircase, RoleGoal}

// Level is the static definition of a playable stage. Vertical positions are
// stored as offsets from GroundY so a level can be re-anchored without
// rewriting every entry.
type Level struct {
	Name          string          `yaml:"name"`
	World         Size            `yaml:"world"`
	GroundY       float64         `yaml:"ground_y"`
	FallThreshold float64         `yaml:"fall_threshold"`
	Start         Point           `yaml:"start"`
	Platforms     []Platform      `yaml:"platforms"`
	Tools         map[string]Tool `yaml:"tools"`
	Pickups       []Pickup        `yaml:"pickups"`
	Virtues       []Virtue        `yaml:"virtues"`
	Checkpoints   []Point         `yaml:"checkpoints"`
	NPCs          []NPC           `yaml:"npcs"`
	Staircase     []int           `yaml:"staircase"`
	Extra         map[string]any  `yaml:",inline"`
	roles         map[string]NPC  `yaml:"-"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Point struct {
	X       float64 `yaml:"x"`
	YOffset float64 `yaml:"y_offset"`
}

type Platform struct {
	X       float64 `yaml:"x"`
	YOffset float64 `yaml:"y_offset"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Kind    string  `yaml:"kind"`
}

type Tool struct {
	Name  string `yaml:"name"`
	Blurb string `yaml:"blurb"`
}

type Pickup struct {
	ID       int     `yaml:"id"`
	X        float64 `yaml:"x"`
	YOffset  float64 `yaml:"y_offset"`
	Radius   float64 `yaml:"radius"`
	Question int     `yaml:"question"`
	Tool     string  `yaml:"tool"`
	Blurb    string  `yaml:"blurb"`
}

type Virtue struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	X       float64 `yaml:"x"`
	YOffset float64 `yaml:"y_offset"`
	Blurb   string  `yaml:"blurb"`
}

type NPC struct {
	Role    string  `yaml:"role"`
	Name    string  `yaml:"name"`
	Sprite  string  `yaml:"sprite"`
	X       float64 `yaml:"x"`
	YOffset float64 `yaml:"y_offset"`
}

// Parse decodes and validates a level definition.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Y converts a ground-relative offset into a world y coordinate.
func (l *Level) Y(offset float64) float64 {
	if l == nil {
		return offset
	}
	return l.GroundY + offset
}

// NPC returns the NPC placed for role.
func (l *Level) NPC(role string) (NPC, bool) {
	if l == nil {
		return NPC{}, false
	}
	if l.roles == nil {
		l.indexRoles()
	}
	npc, ok := l.roles[role]
	return npc, ok
}

// ToolFor resolves the display name and blurb of a pickup. A pickup blurb
// overrides the tool blurb.
func (l *Level) ToolFor(p Pickup) Tool {
	tool := Tool{Name: p.Tool, Blurb: p.Blurb}
	if l == nil {
		return tool
	}
	if def, ok := l.Tools[p.Tool]; ok {
		tool.Name = def.Name
		if tool.Blurb == "" {
			tool.Blurb = def.Blurb
		}
	}
	return tool
}

func (l *Level) indexRoles() {
	l.roles = make(map[string]NPC, len(l.NPCs))
	for _, npc := range l.NPCs {
		l.roles[npc.Role] = npc
	}
}

var (
	ErrInvalidWorld = errors.New("levels: world size must be positive")
	ErrMissingRole  = errors.New("levels: missing npc role")
)

// Validate checks the structural rules the simulation depends on.
func (l *Level) Validate() error {
	if l == nil {
		return errors.New("levels: nil level")
	}
	if l.World.Width <= 0 || l.World.Height <= 0 {
		return ErrInvalidWorld
	}
	if l.FallThreshold <= 0 {
		return fmt.Errorf("levels: fall_threshold must be positive, got %v", l.FallThreshold)
	}
	if len(l.Extra) > 0 {
		for key := range l.Extra {
			return fmt.Errorf("levels: unknown field %q", key)
		}
	}

	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("levels: platform %d has non-positive size %vx%v", i, p.Width, p.Height)
		}
	}

	pickupIDs := make(map[int]struct{}, len(l.Pickups))
	for _, p := range l.Pickups {
		if _, dup := pickupIDs[p.ID]; dup {
			return fmt.Errorf("levels: duplicate pickup id %d", p.ID)
		}
		pickupIDs[p.ID] = struct{}{}
		if p.Radius <= 0 {
			return fmt.Errorf("levels: pickup %d has non-positive radius", p.ID)
		}
		if _, ok := l.Tools[p.Tool]; !ok {
			return fmt.Errorf("levels: pickup %d references unknown tool %q", p.ID, p.Tool)
		}
	}

	virtueIDs := make(map[int]struct{}, len(l.Virtues))
	for _, v := range l.Virtues {
		if _, dup := virtueIDs[v.ID]; dup {
			return fmt.Errorf("levels: duplicate virtue id %d", v.ID)
		}
		virtueIDs[v.ID] = struct{}{}
	}

	l.indexRoles()
	for _, role := range requiredRoles {
		if _, ok := l.roles[role]; !ok {
			return fmt.Errorf("%w %q", ErrMissingRole, role)
		}
	}
	return nil
}
