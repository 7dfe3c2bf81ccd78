package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
	"golang.org/x/image/colornames"
)

// renderer draws the world with flat shapes in camera space.
type renderer struct {
	palette *prefabs.PaletteSpec
}

func paletteColor(c *prefabs.YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (r *renderer) draw(screen *ebiten.Image, w *sim.World, offset cp.Vector) {
	p := r.palette
	screen.Fill(paletteColor(p.Background, color.RGBA{0x1a, 0x14, 0x10, 0xff}))

	cam := w.Camera.Pos.Sub(offset)
	toScreen := func(v cp.Vector) (float32, float32) {
		return float32(v.X - cam.X), float32(v.Y - cam.Y)
	}
	viewW, viewH := w.Camera.ViewW, w.Camera.ViewH
	visible := func(bb cp.BB) bool {
		return bb.R >= cam.X && bb.L <= cam.X+viewW && bb.T >= cam.Y && bb.B <= cam.Y+viewH
	}

	for _, pl := range w.Platforms {
		if !visible(pl.BB) {
			continue
		}
		x, y := toScreen(cp.Vector{X: pl.BB.L, Y: pl.BB.B})
		vector.FillRect(screen, x, y, float32(pl.Width()), float32(pl.Height()), p.PlatformColor(pl.Kind), false)
		vector.StrokeLine(screen, x, y, x+float32(pl.Width()), y, 1, colornames.Tan, false)
	}

	for i, c := range w.Checkpoints {
		x, y := toScreen(c.Respawn)
		clr := colornames.Dimgray
		if i < w.Progress.Passed {
			clr = colornames.Limegreen
		}
		vector.StrokeLine(screen, x, y, x, y+float32(w.Player.Height), 2, clr, false)
	}

	pickupColor := paletteColor(p.Pickup, colornames.Gold)
	for _, pk := range w.Pickups {
		if w.Progress.HasCollected(pk.ID) {
			continue
		}
		x, y := toScreen(pk.Pos)
		bob := float32(math.Sin(float64(w.Frame)/12+float64(pk.ID)) * 3)
		vector.FillCircle(screen, x, y+bob, float32(pk.Radius)/2, pickupColor, true)
		vector.StrokeCircle(screen, x, y+bob, float32(pk.Radius)/2+2, 1, colornames.White, true)
	}

	virtueColor := paletteColor(p.Virtue, colornames.Cornflowerblue)
	for _, v := range w.Virtues {
		if w.Progress.HasVirtue(v.ID) {
			continue
		}
		x, y := toScreen(v.Pos)
		vector.FillRect(screen, x-4, y-12, 8, 24, virtueColor, false)
	}

	npcColor := paletteColor(p.NPC, colornames.Plum)
	for _, npc := range w.NPCs {
		r.drawNPC(screen, npc, toScreen, npcColor)
	}

	px, py := toScreen(w.Player.Pos)
	playerColor := paletteColor(p.Player, colornames.Antiquewhite)
	vector.FillRect(screen, px, py, float32(w.Player.Width), float32(w.Player.Height), playerColor, false)
	if w.Progress.Equipped {
		vector.FillRect(screen, px, py+float32(w.Player.Height)*0.45, float32(w.Player.Width), 4, colornames.White, false)
	}
	eyeX := px + float32(w.Player.Width)/2 + float32(w.Player.Facing)*4
	vector.FillRect(screen, eyeX-1, py+6, 3, 3, colornames.Black, false)
}

func (r *renderer) drawNPC(screen *ebiten.Image, npc component.NPC, toScreen func(cp.Vector) (float32, float32), clr color.Color) {
	const w, h = 20, 44
	x, y := toScreen(npc.Pos)
	vector.FillRect(screen, x-w/2, y-h, w, h, clr, false)
	ebitenutil.DebugPrintAt(screen, npc.Name, int(x)-len(npc.Name)*3, int(y)-h-16)
}

// drawHUD prints score, progress and the transient notices.
func drawHUD(screen *ebiten.Image, w *sim.World, muted bool) {
	line := fmt.Sprintf("Score %d   Tools %d/%d   Virtues %d/%d",
		w.Score, w.CollectedCount(), len(w.Pickups), len(w.Progress.Virtues), len(w.Virtues))
	if w.Progress.Stage == component.StageStaircase {
		line += fmt.Sprintf("   Stairs %d/%d", w.Progress.StaircaseProgress, len(w.Staircase))
	}
	if muted {
		line += "   [muted]"
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 8)

	cx := screen.Bounds().Dx() / 2
	if w.Warning.Visible(w.Frame) {
		drawBanner(screen, w.Warning.Text, cx, 40, colornames.Darkred)
	}
	if w.CheckpointPopup.Visible(w.Frame) {
		drawBanner(screen, w.CheckpointPopup.Text, cx, 72, colornames.Darkgreen)
	}
	if w.FreeFly {
		ebitenutil.DebugPrintAt(screen, "FREE FLY", 8, 24)
	}
}

func drawBanner(screen *ebiten.Image, msg string, cx, y int, bg color.Color) {
	width := len(msg)*6 + 16
	vector.FillRect(screen, float32(cx-width/2), float32(y-4), float32(width), 24, bg, false)
	ebitenutil.DebugPrintAt(screen, msg, cx-width/2+8, y)
}

func drawDebug(screen *ebiten.Image, w *sim.World) {
	p := w.Player
	msg := fmt.Sprintf("FPS %.1f  frame %d  state %s  stage %s\npos (%.1f, %.1f) vel (%.2f, %.2f) grounded %t jumps %d coyote %d buffer %d",
		ebiten.ActualFPS(), w.Frame, w.State, w.Progress.Stage,
		p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded, p.JumpCount, p.CoyoteTimer, p.JumpBuffer)
	ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-40)
}

// drawFlash tints the whole screen, fading out over the remaining frames.
func drawFlash(screen *ebiten.Image, remaining, total int, base color.NRGBA) {
	if remaining <= 0 || total <= 0 {
		return
	}
	a := float64(base.A) * float64(remaining) / float64(total)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{base.R, base.G, base.B, uint8(a)}, false)
}
