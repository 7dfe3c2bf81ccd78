package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/common"
	"github.com/milk9111/middlechamber/dialogue"
	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim/component"
)

// Config wires a World to its level data and collaborators. Nil
// collaborators are replaced by no-ops.
type Config struct {
	Level    *levels.Level
	Bank     *levels.Bank
	Tuning   prefabs.Tuning
	Systems  []System
	Input    InputSource
	Audio    AudioSink
	Scores   ScoreSink
	Narrator Narrator
	Logger   *log.Logger
	Identity component.Identity
}

// World is the simulation context. It is owned by one goroutine; nothing in
// it is safe for concurrent use.
type World struct {
	Level  *levels.Level
	Bank   *levels.Bank
	Tuning prefabs.Tuning

	Platforms   []component.Platform
	Pickups     []component.Pickup
	Virtues     []component.Virtue
	Checkpoints []component.Checkpoint
	NPCs        map[string]component.NPC
	Staircase   []int
	Spawn       cp.Vector

	Player   component.Player
	Camera   component.Camera
	Input    component.Input
	Progress component.Progression
	Identity component.Identity

	Warning         component.Expiring
	CheckpointPopup component.Expiring

	Pending *Interaction
	State   GameState
	Frame   uint64
	Score   int
	FreeFly bool
	Events  EventQueue

	saved             cp.Vector
	identityRequested bool

	source    InputSource
	audio     AudioSink
	scores    ScoreSink
	narrator  Narrator
	logger    *log.Logger
	scheduler *Scheduler
}

func NewWorld(cfg Config) (*World, error) {
	if cfg.Level == nil {
		return nil, errors.New("sim: level is required")
	}
	if cfg.Tuning.Player.Width <= 0 || cfg.Tuning.Player.Height <= 0 {
		return nil, fmt.Errorf("sim: invalid player size %vx%v", cfg.Tuning.Player.Width, cfg.Tuning.Player.Height)
	}

	w := &World{
		Level:     cfg.Level,
		Bank:      cfg.Bank,
		Tuning:    cfg.Tuning,
		Identity:  cfg.Identity,
		source:    cfg.Input,
		audio:     cfg.Audio,
		scores:    cfg.Scores,
		narrator:  cfg.Narrator,
		logger:    cfg.Logger,
		scheduler: NewScheduler(cfg.Systems...),
	}
	if w.audio == nil {
		w.audio = nopAudio{}
	}
	if w.scores == nil {
		w.scores = nopScores{}
	}
	if w.narrator == nil {
		w.narrator = dialogue.Plain{}
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	w.build()
	w.SetViewport(common.BaseWidth, common.BaseHeight)
	w.reset()
	w.State = StateMenu
	return w, nil
}

func (w *World) build() {
	lvl := w.Level

	w.Platforms = make([]component.Platform, 0, len(lvl.Platforms))
	for _, p := range lvl.Platforms {
		w.Platforms = append(w.Platforms, component.NewPlatform(p.X, lvl.Y(p.YOffset), p.Width, p.Height, p.Kind))
	}

	w.Pickups = make([]component.Pickup, 0, len(lvl.Pickups))
	for _, p := range lvl.Pickups {
		tool := lvl.ToolFor(p)
		w.Pickups = append(w.Pickups, component.Pickup{
			ID:         p.ID,
			Pos:        cp.Vector{X: p.X, Y: lvl.Y(p.YOffset)},
			Radius:     p.Radius,
			QuestionID: p.Question,
			Name:       tool.Name,
			SpriteKey:  p.Tool,
			Blurb:      tool.Blurb,
		})
	}

	w.Virtues = make([]component.Virtue, 0, len(lvl.Virtues))
	for _, v := range lvl.Virtues {
		w.Virtues = append(w.Virtues, component.Virtue{
			ID:    v.ID,
			Name:  v.Name,
			Blurb: v.Blurb,
			Pos:   cp.Vector{X: v.X, Y: lvl.Y(v.YOffset)},
		})
	}

	lift := w.Tuning.Rules.CheckpointLift
	w.Checkpoints = make([]component.Checkpoint, 0, len(lvl.Checkpoints))
	for _, c := range lvl.Checkpoints {
		w.Checkpoints = append(w.Checkpoints, component.Checkpoint{
			X:       c.X,
			Respawn: cp.Vector{X: c.X, Y: lvl.Y(c.YOffset) - lift},
		})
	}

	w.NPCs = make(map[string]component.NPC, len(lvl.NPCs))
	for _, n := range lvl.NPCs {
		w.NPCs[n.Role] = component.NPC{
			Role:      n.Role,
			Name:      n.Name,
			SpriteKey: n.Sprite,
			Pos:       cp.Vector{X: n.X, Y: lvl.Y(n.YOffset)},
		}
	}

	w.Staircase = append([]int(nil), lvl.Staircase...)
	w.Spawn = cp.Vector{X: lvl.Start.X, Y: lvl.Y(lvl.Start.YOffset)}
}

// reset restores the start-of-playthrough state without touching the top-level state.
func (w *World) reset() {
	spec := w.Tuning.Player
	w.Player = component.Player{
		Pos:    w.Spawn,
		Width:  spec.Width,
		Height: spec.Height,
		Facing: 1,
	}
	w.Progress = component.NewProgression(component.Checkpoint{X: w.Spawn.X, Respawn: w.Spawn})
	w.Input = component.Input{}
	w.Warning.Clear()
	w.CheckpointPopup.Clear()
	w.Pending = nil
	w.saved = cp.Vector{}
	w.Frame = 0
	w.Score = 0
	w.FreeFly = false
	w.identityRequested = false
	w.Events.flush()
	w.SnapCamera()
}

// SetViewport sizes the camera view from the window. The view height is
// fixed to the design height; the width follows the aspect ratio.
func (w *World) SetViewport(width, height int) {
	if w == nil || width <= 0 || height <= 0 {
		return
	}
	viewH := w.Tuning.Camera.DesignHeight
	if viewH <= 0 {
		viewH = common.DesignHeight
	}
	w.Camera.ViewH = viewH
	w.Camera.ViewW = float64(width) / (float64(height) / viewH)
}

// SnapCamera places the camera at the start view.
func (w *World) SnapCamera() {
	if w == nil {
		return
	}
	w.Camera.Pos = cp.Vector{X: 0, Y: w.Level.GroundY - w.Camera.ViewH + w.Tuning.Camera.GroundMargin}
}

// Tick advances one frame. It does nothing unless the state is playing. A
// panic inside a system abandons the rest of the frame; the next tick runs
// normally.
func (w *World) Tick() {
	if w == nil || w.State != StatePlaying {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("tick aborted", "frame", w.Frame, "panic", r)
			sentry.CurrentHub().Recover(r)
		}
	}()

	w.Frame++
	w.scheduler.Update(w)
}

func (w *World) Start() error {
	if w == nil {
		return errors.New("sim: nil world")
	}
	if w.State != StateMenu {
		return fmt.Errorf("sim: cannot start from %s", w.State)
	}
	w.reset()
	w.setState(StatePlaying)
	return nil
}

// SetLevel swaps in a new level definition and resets the playthrough
// without changing the top-level state. Callers normally follow it with
// Restart.
func (w *World) SetLevel(lvl *levels.Level) error {
	if w == nil {
		return errors.New("sim: nil world")
	}
	if lvl == nil {
		return errors.New("sim: level is required")
	}
	w.Level = lvl
	w.build()
	w.reset()
	w.logger.Info("level loaded", "name", lvl.Name, "platforms", len(w.Platforms), "pickups", len(w.Pickups))
	return nil
}

// Restart begins a fresh playthrough from any state.
func (w *World) Restart() {
	if w == nil {
		return
	}
	w.reset()
	w.setState(StatePlaying)
}

func (w *World) ReturnToMenu() {
	if w == nil {
		return
	}
	w.reset()
	w.setState(StateMenu)
}

func (w *World) Pause() bool {
	if w == nil || w.State != StatePlaying {
		return false
	}
	w.setState(StatePaused)
	return true
}

func (w *World) Resume() bool {
	if w == nil || w.State != StatePaused {
		return false
	}
	w.setState(StatePlaying)
	return true
}

// ToggleFreeFly flips the debug flight mode and returns the new value.
func (w *World) ToggleFreeFly() bool {
	if w == nil {
		return false
	}
	w.FreeFly = !w.FreeFly
	w.logger.Debug("free fly", "enabled", w.FreeFly)
	return w.FreeFly
}

func (w *World) setState(s GameState) {
	if w.State == s {
		return
	}
	w.logger.Debug("state", "from", w.State, "to", s)
	w.State = s
}

// SetIdentity supplies the identity gate fields.
func (w *World) SetIdentity(id component.Identity) {
	if w == nil {
		return
	}
	w.Identity = id
	if id.Complete() {
		w.identityRequested = false
	}
}

// IdentityRequested reports whether the identity gate is waiting for data.
func (w *World) IdentityRequested() bool {
	return w != nil && w.identityRequested
}

// RequestIdentity raises the identity request once until it is satisfied.
func (w *World) RequestIdentity() {
	if w == nil || w.identityRequested {
		return
	}
	w.identityRequested = true
	w.Events.Push(Event{Kind: EventIdentityRequested})
	w.logger.Info("identity requested")
}

// SetInput replaces the input source.
func (w *World) SetInput(src InputSource) {
	if w == nil {
		return
	}
	w.source = src
}

func (w *World) Source() InputSource {
	if w == nil {
		return nil
	}
	return w.source
}

func (w *World) Narrator() Narrator {
	if w == nil || w.narrator == nil {
		return dialogue.Plain{}
	}
	return w.narrator
}

func (w *World) Logger() *log.Logger {
	if w == nil || w.logger == nil {
		return log.New(io.Discard)
	}
	return w.logger
}

// NPC returns the NPC placed for role.
func (w *World) NPC(role string) (component.NPC, bool) {
	if w == nil {
		return component.NPC{}, false
	}
	npc, ok := w.NPCs[role]
	return npc, ok
}

// Cue requests an audio cue. A failing sink never reaches the caller.
func (w *World) Cue(c Cue) {
	if w == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("audio cue failed", "cue", c, "panic", r)
		}
	}()
	w.audio.Play(c)
}

func (w *World) submit(completed bool) {
	res := Result{
		Name:      w.Identity.Name,
		UserID:    w.Identity.UserID,
		Score:     w.Score,
		Completed: completed,
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("score submit failed", "panic", r)
		}
	}()
	w.scores.Submit(res)
}
