package component

// Stage is the ordered part of progression.
type Stage int

const (
	StageIdentity Stage = iota
	StageInvestiture
	StageStaircase
	StageOpen
)

func (s Stage) String() string {
	switch s {
	case StageIdentity:
		return "identity"
	case StageInvestiture:
		return "investiture"
	case StageStaircase:
		return "staircase"
	case StageOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Progression is the durable state of one playthrough.
type Progression struct {
	Stage             Stage
	Greeted           bool
	Equipped          bool
	Restored          bool
	StaircaseProgress int
	// StaircaseArmed is cleared when the staircase gate fires and set again
	// once the player leaves its trigger range.
	StaircaseArmed  bool
	Collected       map[int]struct{}
	Virtues         map[int]struct{}
	SeenLore        map[string]struct{}
	VirtueIntroSeen bool
	Checkpoint      Checkpoint
	Passed          int
}

func NewProgression(start Checkpoint) Progression {
	return Progression{
		Stage:          StageIdentity,
		StaircaseArmed: true,
		Collected:      make(map[int]struct{}),
		Virtues:        make(map[int]struct{}),
		SeenLore:       make(map[string]struct{}),
		Checkpoint:     start,
	}
}

func (p *Progression) HasCollected(id int) bool {
	_, ok := p.Collected[id]
	return ok
}

func (p *Progression) HasVirtue(id int) bool {
	_, ok := p.Virtues[id]
	return ok
}
