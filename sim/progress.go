package sim

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/sim/component"
)

// Begin freezes the player and makes it the pending interaction. The tick
// stops running until Resolve clears it.
func (w *World) Begin(it Interaction) error {
	if w == nil {
		return ErrNotPlaying
	}
	if w.Pending != nil {
		return ErrInteractionActive
	}
	if w.State != StatePlaying {
		return ErrNotPlaying
	}

	w.saved = w.Player.Vel
	w.Player.Vel = cp.Vector{}
	w.Input.Clear()
	w.raise(it)
	w.Cue(CueLore)
	return nil
}

func (w *World) raise(it Interaction) {
	w.Pending = &it
	if it.Kind == KindQuiz {
		w.setState(StateQuiz)
	} else {
		w.setState(StateLore)
	}
	w.Events.Push(Event{Kind: EventInteraction, ID: it.TargetID, Text: it.Subject.String()})
	w.logger.Debug("interaction", "kind", it.Kind, "subject", it.Subject, "target", it.TargetID)
}

// Resolve answers the pending interaction. It is the only way back to play
// from the lore and quiz states.
func (w *World) Resolve(o Outcome) error {
	if w == nil || w.Pending == nil {
		return ErrNoInteraction
	}
	it := *w.Pending

	switch it.Kind {
	case KindDialogue:
		if o != OutcomeContinue {
			return fmt.Errorf("%w: %s for %s", ErrOutcomeMismatch, o, it.Kind)
		}
		w.Pending = nil
		w.continueDialogue(it)
	case KindQuiz:
		switch o {
		case OutcomeCorrect:
			w.Pending = nil
			w.answerCorrect(it)
		case OutcomeIncorrect:
			w.Pending = nil
			w.GameOver()
		default:
			return fmt.Errorf("%w: %s for %s", ErrOutcomeMismatch, o, it.Kind)
		}
	}
	return nil
}

func (w *World) continueDialogue(it Interaction) {
	switch it.Subject {
	case SubjectInvestiture:
		w.Progress.Restored = true
		w.Progress.Equipped = true
		w.Progress.Stage = component.StageStaircase
		if len(w.Staircase) == 0 {
			w.Progress.Stage = component.StageOpen
		}
	case SubjectStaircase:
		if q, ok := w.Bank.Lookup(w.staircaseQuestion()); ok {
			it.Kind = KindQuiz
			it.Body = q.Text
			it.Question = q
			w.raise(it)
			return
		}
		w.AdvanceStaircase()
	case SubjectPickup:
		if p, ok := w.pickup(it.TargetID); ok {
			if q, ok := w.Bank.Lookup(p.QuestionID); ok {
				it.Kind = KindQuiz
				it.Body = q.Text
				it.Question = q
				w.raise(it)
				return
			}
		}
		w.CollectPickup(it.TargetID)
	case SubjectVirtue:
		w.CollectVirtue(it.TargetID)
	}
	w.resume()
}

func (w *World) answerCorrect(it Interaction) {
	switch it.Subject {
	case SubjectStaircase:
		w.AdvanceStaircase()
	case SubjectPickup:
		w.CollectPickup(it.TargetID)
	}
	w.resume()
}

// resume returns to play with part of the frozen momentum. Upward motion
// carries over; downward motion never does.
func (w *World) resume() {
	rules := w.Tuning.Rules
	w.Player.Vel = cp.Vector{
		X: w.saved.X * rules.ResumeFactorX,
		Y: math.Min(w.saved.Y*rules.ResumeFactorY, 0),
	}
	w.saved = cp.Vector{}
	w.Input.Clear()
	w.setState(StatePlaying)
}

// CollectNow collects a pickup without a modal, applying the same momentum
// damping as a resolved interaction.
func (w *World) CollectNow(id int) bool {
	if w == nil {
		return false
	}
	w.saved = w.Player.Vel
	ok := w.CollectPickup(id)
	w.resume()
	return ok
}

// CollectPickup marks id collected and awards points. Collecting an id a
// second time has no effect.
func (w *World) CollectPickup(id int) bool {
	if w == nil || w.Progress.HasCollected(id) {
		return false
	}
	w.Progress.Collected[id] = struct{}{}
	w.Score += w.Tuning.Rules.PickupPoints
	w.Cue(CueCollect)
	w.Events.Push(Event{Kind: EventCollect, ID: id, Value: w.Tuning.Rules.PickupPoints})
	w.logger.Info("pickup collected", "id", id, "score", w.Score)
	return true
}

func (w *World) CollectVirtue(id int) bool {
	if w == nil || w.Progress.HasVirtue(id) {
		return false
	}
	w.Progress.Virtues[id] = struct{}{}
	w.Progress.VirtueIntroSeen = true
	w.Events.Push(Event{Kind: EventVirtue, ID: id})
	w.logger.Info("virtue collected", "id", id, "count", len(w.Progress.Virtues))
	return true
}

// AdvanceStaircase records one answered staircase question.
func (w *World) AdvanceStaircase() {
	if w == nil || w.Progress.StaircaseProgress >= len(w.Staircase) {
		return
	}
	w.Progress.StaircaseProgress++
	w.Score += w.Tuning.Rules.StaircasePoints
	w.Cue(CueCollect)
	if w.Progress.StaircaseProgress >= len(w.Staircase) {
		w.Progress.Stage = component.StageOpen
	}
	w.logger.Info("staircase", "progress", w.Progress.StaircaseProgress, "of", len(w.Staircase))
}

func (w *World) staircaseQuestion() int {
	i := w.Progress.StaircaseProgress
	if i < 0 || i >= len(w.Staircase) {
		return 0
	}
	return w.Staircase[i]
}

func (w *World) pickup(id int) (component.Pickup, bool) {
	for _, p := range w.Pickups {
		if p.ID == id {
			return p, true
		}
	}
	return component.Pickup{}, false
}

// CollectedCount is the number of level pickups collected.
func (w *World) CollectedCount() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, p := range w.Pickups {
		if w.Progress.HasCollected(p.ID) {
			n++
		}
	}
	return n
}

func (w *World) AllCollected() bool {
	return w != nil && w.CollectedCount() == len(w.Pickups)
}

// Win ends the playthrough. The final score adds the completion bonus and,
// with enough virtues, the virtue bonus.
func (w *World) Win() {
	if w == nil || w.State.Terminal() {
		return
	}
	rules := w.Tuning.Rules
	bonus := 0
	if len(w.Progress.Virtues) >= rules.VirtueBonusThreshold {
		bonus = rules.VirtueBonus
	}
	w.Score += rules.CompletionBonus + bonus
	w.submit(true)
	w.setState(StateVictory)
	w.Cue(CueWin)
	w.Events.Push(Event{Kind: EventVictory, Value: w.Score})
	w.logger.Info("victory", "score", w.Score, "virtues", len(w.Progress.Virtues))
}

// GameOver ends the playthrough after a wrong answer.
func (w *World) GameOver() {
	if w == nil || w.State.Terminal() {
		return
	}
	w.Cue(CueError)
	w.submit(false)
	w.setState(StateGameOver)
	w.Events.Push(Event{Kind: EventGameOver, Value: w.Score})
	w.logger.Info("game over", "score", w.Score)
}
