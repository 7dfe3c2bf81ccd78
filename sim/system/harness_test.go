package system

import (
	"testing"

	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
)

// Two floors with a gap between x=600 and x=800. The top of both floors is
// y=300; a standing player has y=255.
const baseLevel = `
name: flat
world: {width: 2000, height: 2000}
ground_y: 300
fall_threshold: 600
start: {x: 100, y_offset: -45}
platforms:
  - {x: 0, y_offset: 0, width: 600, height: 100, kind: floor}
  - {x: 800, y_offset: 0, width: 600, height: 100, kind: floor}
tools:
  square: {name: The Square, blurb: A square.}
  level: {name: The Level, blurb: A level.}
`

const farNPCs = `
npcs:
  - {role: identity, name: Inner Guard, sprite: inner_guard, x: 1900}
  - {role: investiture, name: Senior Warden, sprite: senior_warden, x: 1950}
  - {role: staircase, name: Junior Warden, sprite: junior_warden, x: 1960, y_offset: -900}
  - {role: goal, name: Worshipful Master, sprite: worshipful_master, x: 1990, y_offset: -900}
`

type cueLog struct {
	cues []sim.Cue
}

func (c *cueLog) Play(cue sim.Cue) { c.cues = append(c.cues, cue) }

func (c *cueLog) count(cue sim.Cue) int {
	n := 0
	for _, got := range c.cues {
		if got == cue {
			n++
		}
	}
	return n
}

type scoreLog struct {
	results []sim.Result
}

func (s *scoreLog) Submit(r sim.Result) { s.results = append(s.results, r) }

type harness struct {
	t      *testing.T
	w      *sim.World
	in     component.Intents
	audio  *cueLog
	scores *scoreLog
	events []sim.Event
}

var (
	idle      = component.Intents{}
	right     = component.Intents{Right: true}
	left      = component.Intents{Left: true}
	jumpPress = component.Intents{Jump: true, JumpPressed: true}
	jumpHold  = component.Intents{Jump: true}
)

func newHarness(t *testing.T, doc string) *harness {
	t.Helper()

	lvl, err := levels.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	bank, err := levels.LoadBank("")
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}

	h := &harness{t: t, audio: &cueLog{}, scores: &scoreLog{}}
	h.w, err = sim.NewWorld(sim.Config{
		Level:   lvl,
		Bank:    bank,
		Tuning:  tuning,
		Systems: Defaults(),
		Input:   sim.InputFunc(func() component.Intents { return h.in }),
		Audio:   h.audio,
		Scores:  h.scores,
		Identity: component.Identity{
			Name:           "Ada",
			Rank:           "Bro.",
			InitiationDate: "2021-05-01",
		},
	})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	if err := h.w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return h
}

// open skips the ordered gates.
func (h *harness) open() *harness {
	h.w.Progress.Stage = component.StageOpen
	return h
}

func (h *harness) step(in component.Intents) []sim.Event {
	h.in = in
	h.w.Tick()
	evts := h.w.Events.Drain()
	h.events = append(h.events, evts...)
	return evts
}

// hold repeats in for up to n ticks and stops early once play is suspended.
func (h *harness) hold(in component.Intents, n int) int {
	for i := 0; i < n; i++ {
		if h.w.State != sim.StatePlaying {
			return i
		}
		h.step(in)
	}
	return n
}

func (h *harness) resolve(o sim.Outcome) {
	h.t.Helper()
	if err := h.w.Resolve(o); err != nil {
		h.t.Fatalf("resolve %s: %v", o, err)
	}
}

func (h *harness) settle() {
	h.t.Helper()
	h.step(idle)
	if !h.w.Player.Grounded {
		h.t.Fatalf("player should be grounded, pos=%+v", h.w.Player.Pos)
	}
}

func countKind(evts []sim.Event, kind sim.EventKind) int {
	n := 0
	for _, e := range evts {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func jumps(evts []sim.Event) []sim.JumpKind {
	var out []sim.JumpKind
	for _, e := range evts {
		if e.Kind == sim.EventJump {
			out = append(out, e.Jump)
		}
	}
	return out
}
