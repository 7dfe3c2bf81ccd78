package system

import (
	"math"

	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
)

// gate inspects the world once per tick. It reports true when it blocked the
// player or raised an interaction; later gates are then skipped.
type gate func(w *sim.World) bool

// GateSystem evaluates the progression gates in priority order. The identity
// gate runs first because it can block every gate behind it.
type GateSystem struct {
	gates []gate
}

func NewGateSystem() *GateSystem {
	return &GateSystem{gates: []gate{
		identityGate,
		investitureGate,
		staircaseGate,
		pickupGate,
		virtueGate,
		goalGate,
	}}
}

func (gs *GateSystem) Update(w *sim.World) {
	if w == nil {
		return
	}
	for _, g := range gs.gates {
		if w.State != sim.StatePlaying {
			return
		}
		if g(w) {
			return
		}
	}
}

func begin(w *sim.World, it sim.Interaction) bool {
	if err := w.Begin(it); err != nil {
		w.Logger().Warn("interaction refused", "subject", it.Subject, "err", err)
		return false
	}
	return true
}

func identityGate(w *sim.World) bool {
	if w.Progress.Stage != component.StageIdentity {
		return false
	}
	npc, ok := w.NPC(levels.RoleIdentity)
	if !ok {
		return false
	}

	p := &w.Player
	limit := npc.Pos.X - w.Tuning.Rules.IdentityBlockOffset
	if p.Pos.X <= limit {
		return false
	}

	if !w.Identity.Complete() {
		p.Pos.X = limit
		p.Vel.X = 0
		w.Input.Clear()
		w.RequestIdentity()
		return true
	}

	w.Progress.Greeted = true
	w.Progress.Stage = component.StageInvestiture
	return begin(w, sim.Interaction{
		Kind:      sim.KindDialogue,
		Subject:   sim.SubjectGreeting,
		Speaker:   npc.Name,
		SpriteKey: npc.SpriteKey,
		Body:      w.Narrator().Greeting(w.Identity),
	})
}

func investitureGate(w *sim.World) bool {
	if w.Progress.Stage != component.StageInvestiture || !w.Progress.Greeted {
		return false
	}
	npc, ok := w.NPC(levels.RoleInvestiture)
	if !ok {
		return false
	}

	p := &w.Player
	limit := npc.Pos.X - w.Tuning.Rules.InvestitureBlockOffset
	if p.Pos.X <= limit {
		return false
	}

	p.Pos.X = limit
	return begin(w, sim.Interaction{
		Kind:      sim.KindDialogue,
		Subject:   sim.SubjectInvestiture,
		Speaker:   npc.Name,
		SpriteKey: npc.SpriteKey,
		Body:      w.Narrator().Investiture(),
	})
}

// near reports whether the player's feet are within rx horizontally (from
// the player's center) and ry vertically of an anchor.
func near(p *component.Player, ax, ay, rx, ry float64) bool {
	return math.Abs(p.Center().X-ax) < rx && math.Abs(p.Feet()-ay) < ry
}

func staircaseGate(w *sim.World) bool {
	if w.Progress.Stage != component.StageStaircase {
		return false
	}
	npc, ok := w.NPC(levels.RoleStaircase)
	if !ok {
		return false
	}

	rules := w.Tuning.Rules
	if !near(&w.Player, npc.Pos.X, npc.Pos.Y, rules.StaircaseRangeX, rules.StaircaseRangeY) {
		w.Progress.StaircaseArmed = true
		return false
	}
	if !w.Progress.StaircaseArmed {
		return false
	}

	w.Progress.StaircaseArmed = false
	return begin(w, sim.Interaction{
		Kind:      sim.KindDialogue,
		Subject:   sim.SubjectStaircase,
		Speaker:   npc.Name,
		SpriteKey: npc.SpriteKey,
		Body:      w.Narrator().StaircasePrompt(w.Progress.StaircaseProgress, len(w.Staircase)),
	})
}

func pickupGate(w *sim.World) bool {
	p := &w.Player
	center := p.Center()
	slack := w.Tuning.Rules.PickupSlack

	for _, pk := range w.Pickups {
		if w.Progress.HasCollected(pk.ID) {
			continue
		}
		if center.Distance(pk.Pos) >= pk.Radius+p.Width/2+slack {
			continue
		}

		if _, seen := w.Progress.SeenLore[pk.SpriteKey]; !seen {
			w.Progress.SeenLore[pk.SpriteKey] = struct{}{}
			return begin(w, sim.Interaction{
				Kind:      sim.KindDialogue,
				Subject:   sim.SubjectPickup,
				Speaker:   pk.Name,
				SpriteKey: pk.SpriteKey,
				Body:      pk.Blurb,
				TargetID:  pk.ID,
			})
		}

		if q, ok := w.Bank.Lookup(pk.QuestionID); ok {
			return begin(w, sim.Interaction{
				Kind:      sim.KindQuiz,
				Subject:   sim.SubjectPickup,
				Speaker:   pk.Name,
				SpriteKey: pk.SpriteKey,
				Body:      q.Text,
				Question:  q,
				TargetID:  pk.ID,
			})
		}

		w.CollectNow(pk.ID)
		return true
	}
	return false
}

func virtueGate(w *sim.World) bool {
	p := &w.Player
	center := p.Center()
	radius := w.Tuning.Rules.VirtueRadius

	for _, v := range w.Virtues {
		if w.Progress.HasVirtue(v.ID) {
			continue
		}
		if center.Distance(v.Pos) >= radius {
			continue
		}

		first := !w.Progress.VirtueIntroSeen && len(w.Progress.Virtues) == 0
		speaker := v.Name
		if first {
			speaker = "Cardinal Virtue: " + v.Name
		}
		w.Progress.VirtueIntroSeen = true
		return begin(w, sim.Interaction{
			Kind:      sim.KindDialogue,
			Subject:   sim.SubjectVirtue,
			Speaker:   speaker,
			SpriteKey: "tassel",
			Body:      w.Narrator().VirtueIntro(v.Name, v.Blurb, first),
			TargetID:  v.ID,
		})
	}
	return false
}

func goalGate(w *sim.World) bool {
	npc, ok := w.NPC(levels.RoleGoal)
	if !ok {
		return false
	}

	rules := w.Tuning.Rules
	p := &w.Player
	if !near(p, npc.Pos.X, npc.Pos.Y, rules.GoalRangeX, rules.GoalRangeY) {
		return false
	}

	if w.AllCollected() {
		w.Win()
		return true
	}

	p.Pos.X = npc.Pos.X - rules.GoalPushBack
	p.Vel.X = 0
	if !w.Warning.Visible(w.Frame) {
		text := w.Narrator().GoalWarning(w.CollectedCount(), len(w.Pickups))
		w.Warning.Show(text, w.Frame, rules.WarningFrames)
		w.Cue(sim.CueError)
		w.Events.Push(sim.Event{Kind: sim.EventWarning, Value: w.CollectedCount(), Text: text})
	}
	return true
}
