package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
	"github.com/milk9111/middlechamber/sim/system"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	lvl, _, err := levels.Load("")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	bank, err := levels.LoadBank("")
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	w, err := sim.NewWorld(sim.Config{
		Level:   lvl,
		Bank:    bank,
		Tuning:  tuning,
		Systems: system.Defaults(),
		Identity: component.Identity{
			Name:           "Ada",
			Rank:           "Bro.",
			InitiationDate: "2021-05-01",
		},
	})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return &Game{world: w, logger: log.New(io.Discard)}
}

func TestCheckLevelSummary(t *testing.T) {
	lvl, src, err := levels.Load("")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	bank, err := levels.LoadBank("")
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	var out bytes.Buffer
	if missing := checkLevel(&out, lvl, src, bank); missing != 0 {
		t.Fatalf("default level has %d unresolved questions:\n%s", missing, out.String())
	}
	for _, want := range []string{lvl.Name, "platforms", "staircase"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}

func TestCheckLevelReportsUnknownQuestions(t *testing.T) {
	lvl, src, err := levels.Load("")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	bank, err := levels.NewBank(levels.Question{ID: 1, Text: "q", Answers: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}

	var out bytes.Buffer
	if missing := checkLevel(&out, lvl, src, bank); missing == 0 {
		t.Fatalf("expected unresolved questions against a one-question bank")
	}
	if !strings.Contains(out.String(), "warning:") {
		t.Errorf("expected warnings in:\n%s", out.String())
	}
}

func TestGameAnswerResolvesQuiz(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	q := levels.Question{ID: 42, Text: "?", Answers: []string{"right", "wrong"}, Correct: 0, Explanation: "because"}
	if err := w.Begin(sim.Interaction{Kind: sim.KindQuiz, Subject: sim.SubjectStaircase, Question: q}); err != nil {
		t.Fatalf("begin: %v", err)
	}

	g.answer(q, 1)
	if w.State != sim.StateGameOver {
		t.Fatalf("state = %s, want game over after a wrong answer", w.State)
	}
	if got, ok := g.lastQuestionAsked(); !ok || got.Explanation != "because" {
		t.Errorf("last question not recorded: %+v %v", got, ok)
	}

	g.restart()
	if w.State != sim.StatePlaying {
		t.Fatalf("state = %s after restart", w.State)
	}
	if _, ok := g.lastQuestionAsked(); ok {
		t.Errorf("restart kept the last question")
	}
}

func TestGameSubmitIdentityRequiresFields(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	w.SetIdentity(component.Identity{})

	g.submitIdentity(component.Identity{Name: "Bo"})
	if w.Identity.Complete() {
		t.Fatalf("incomplete identity was accepted")
	}

	g.submitIdentity(component.Identity{Name: "Bo", Rank: "Bro.", InitiationDate: "2020-01-01", GrandOfficer: component.HonorYes})
	if w.Identity.Name != "Bo" || w.Identity.GrandOfficer != component.HonorYes {
		t.Fatalf("identity = %+v", w.Identity)
	}
}

func TestGameHandleEventsStartsEffects(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	w.Events.Push(sim.Event{Kind: sim.EventShake, Frames: 12})
	w.Events.Push(sim.Event{Kind: sim.EventFlash, Frames: 9, Text: "checkpoint"})

	g.handleEvents()
	if g.shake != 12 || g.shakeTotal != 12 {
		t.Errorf("shake = %d/%d", g.shake, g.shakeTotal)
	}
	if g.flash != 9 || g.flashColor != checkpointFlash {
		t.Errorf("flash = %d %v", g.flash, g.flashColor)
	}
	if w.Events.Len() != 0 {
		t.Errorf("events not drained")
	}
	if off := g.shakeOffset(); off.X == 0 && off.Y == 0 {
		t.Errorf("expected a shake offset while shaking")
	}
}
