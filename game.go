package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/assets"
	"github.com/milk9111/middlechamber/common"
	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
	"golang.design/x/clipboard"
)

var (
	errorFlash      = color.NRGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 110}
	checkpointFlash = color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 70}
)

// Game hosts a World in the ebiten loop. It owns presentation only:
// modals, effects, audio toggles and hot reload.
type Game struct {
	world     *sim.World
	logger    *log.Logger
	theme     *modalTheme
	renderer  *renderer
	audio     *assets.CuePlayer
	watcher   *levels.Watcher
	levelPath string
	debug     bool

	ui    *ebitenui.UI
	uiKey string

	nextLevel    *levels.Level
	lastQuestion levels.Question
	hasQuestion  bool

	shake, shakeTotal int
	flash, flashTotal int
	flashColor        color.NRGBA

	clipboardOK bool
	width       int
	height      int
}

type GameOptions struct {
	World     *sim.World
	Logger    *log.Logger
	Palette   *prefabs.PaletteSpec
	Audio     *assets.CuePlayer
	Watcher   *levels.Watcher
	LevelPath string
	Debug     bool
}

func NewGame(opts GameOptions) *Game {
	g := &Game{
		world:     opts.World,
		logger:    opts.Logger,
		theme:     newModalTheme(),
		renderer:  &renderer{palette: opts.Palette},
		audio:     opts.Audio,
		watcher:   opts.Watcher,
		levelPath: opts.LevelPath,
		debug:     opts.Debug,
		width:     common.BaseWidth,
		height:    common.BaseHeight,
	}
	if g.logger == nil {
		g.logger = g.world.Logger()
	}
	if err := clipboard.Init(); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboardOK = true
	}
	return g
}

func (g *Game) Update() error {
	g.drainWatcher()
	w := g.world

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.audio != nil {
		g.logger.Info("audio", "muted", g.audio.ToggleMute())
	}
	if g.debug && freeFlyPressed() {
		w.ToggleFreeFly()
	}

	switch w.State {
	case sim.StateMenu:
		if confirmPressed() {
			g.start()
		}
	case sim.StatePlaying:
		if pausePressed() {
			w.Pause()
			break
		}
		if w.IdentityRequested() {
			break
		}
		w.Tick()
	case sim.StatePaused:
		if pausePressed() {
			w.Resume()
		}
	case sim.StateLore, sim.StateQuiz:
		g.handleModalKeys()
	case sim.StateGameOver, sim.StateVictory:
		if w.State == sim.StateVictory && inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copySummary()
		}
		if confirmPressed() {
			g.restart()
		}
	}

	g.handleEvents()
	g.syncUI()
	if g.ui != nil {
		g.ui.Update()
	}

	if g.shake > 0 {
		g.shake--
	}
	if g.flash > 0 {
		g.flash--
	}
	return nil
}

func (g *Game) handleModalKeys() {
	it := g.world.Pending
	if it == nil {
		return
	}
	switch it.Kind {
	case sim.KindDialogue:
		if confirmPressed() {
			g.resolve(sim.OutcomeContinue)
		}
	case sim.KindQuiz:
		if choice, ok := answerPressed(len(it.Question.Answers)); ok {
			g.answer(it.Question, choice)
		}
	}
}

func (g *Game) handleEvents() {
	rules := g.world.Tuning.Rules
	for _, evt := range g.world.Events.Drain() {
		switch evt.Kind {
		case sim.EventShake:
			g.shake, g.shakeTotal = evt.Frames, evt.Frames
		case sim.EventFlash:
			frames := evt.Frames
			if frames <= 0 {
				frames = rules.FlashFrames
			}
			g.flash, g.flashTotal = frames, frames
			g.flashColor = errorFlash
			if evt.Text == "checkpoint" {
				g.flashColor = checkpointFlash
			}
		case sim.EventIdentityRequested:
			g.logger.Info("identity needed before the first gate")
		}
		if g.debug {
			g.logger.Debug("event", "kind", evt.Kind, "id", evt.ID, "value", evt.Value, "text", evt.Text)
		}
	}
}

// syncUI rebuilds the modal whenever the state or the pending interaction
// changes.
func (g *Game) syncUI() {
	w := g.world
	key := w.State.String()
	switch {
	case w.State == sim.StatePlaying && w.IdentityRequested():
		key = "identity"
	case w.Pending != nil:
		key = fmt.Sprintf("%s:%p", key, w.Pending)
	}
	if key == g.uiKey {
		return
	}
	g.uiKey = key

	switch {
	case key == "identity":
		g.ui = NewIdentityUI(g)
	case w.State == sim.StateMenu:
		g.ui = NewMenuUI(g)
	case w.State == sim.StatePaused:
		g.ui = NewPauseUI(g)
	case w.Pending != nil:
		g.ui = NewInteractionUI(g, *w.Pending)
	case w.State.Terminal():
		g.ui = NewEndUI(g)
	default:
		g.ui = nil
	}
}

func (g *Game) resolve(o sim.Outcome) {
	if err := g.world.Resolve(o); err != nil {
		g.logger.Warn("resolve", "outcome", o, "err", err)
	}
}

func (g *Game) answer(q levels.Question, choice int) {
	g.lastQuestion, g.hasQuestion = q, true
	if q.IsCorrect(choice) {
		g.resolve(sim.OutcomeCorrect)
		return
	}
	g.resolve(sim.OutcomeIncorrect)
}

func (g *Game) lastQuestionAsked() (levels.Question, bool) {
	return g.lastQuestion, g.hasQuestion
}

func (g *Game) submitIdentity(id component.Identity) {
	if !id.Complete() {
		g.logger.Warn("identity incomplete", "name", id.Name, "rank", id.Rank, "initiated", id.InitiationDate)
		return
	}
	g.world.SetIdentity(id)
	g.logger.Info("identity set", "name", id.Name, "rank", id.Rank, "grand_officer", id.GrandOfficer)
}

func (g *Game) start() {
	g.applyPendingLevel()
	if err := g.world.Start(); err != nil {
		g.logger.Warn("start", "err", err)
	}
	g.resetEffects()
}

func (g *Game) restart() {
	g.applyPendingLevel()
	g.world.Restart()
	g.resetEffects()
}

func (g *Game) menu() {
	g.applyPendingLevel()
	g.world.ReturnToMenu()
	g.resetEffects()
}

func (g *Game) resetEffects() {
	g.shake, g.flash = 0, 0
	g.hasQuestion = false
}

// drainWatcher parses changed level files and keeps the newest valid one
// for the next restart.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			lvl, src, err := levels.Load(path)
			if err != nil {
				g.logger.Warn("reload rejected", "path", path, "err", err)
				continue
			}
			g.nextLevel = lvl
			g.logger.Info("level changed, applies on restart", "path", src.Path, "fingerprint", fmt.Sprintf("%016x", src.Fingerprint))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) applyPendingLevel() {
	if g.nextLevel == nil {
		return
	}
	if err := g.world.SetLevel(g.nextLevel); err != nil {
		g.logger.Warn("apply level", "err", err)
	}
	g.nextLevel = nil
}

func (g *Game) summary() string {
	w := g.world
	return fmt.Sprintf("%s (%s) reached the Middle Chamber with %d points: %d/%d Working Tools, %d/%d virtues.",
		w.Identity.Name, w.Identity.Rank, w.Score, w.CollectedCount(), len(w.Pickups), len(w.Progress.Virtues), len(w.Virtues))
}

func (g *Game) copySummary() {
	if !g.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.summary()))
	g.logger.Info("result copied")
}

func (g *Game) shakeOffset() cp.Vector {
	if g.shake <= 0 || g.shakeTotal <= 0 {
		return cp.Vector{}
	}
	amp := 6 * float64(g.shake) / float64(g.shakeTotal)
	f := float64(g.world.Frame + uint64(g.shake))
	return cp.Vector{X: math.Sin(f*1.7) * amp, Y: math.Cos(f*2.3) * amp}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	g.renderer.draw(screen, w, g.shakeOffset())
	if w.State != sim.StateMenu {
		muted := g.audio != nil && g.audio.Muted()
		drawHUD(screen, w, muted)
	}
	drawFlash(screen, g.flash, g.flashTotal, g.flashColor)
	if g.debug {
		drawDebug(screen, w)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

// Layout keeps the design height and widens the view with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.world.SetViewport(outsideWidth, outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return int(g.world.Camera.ViewW), int(g.world.Camera.ViewH)
}
