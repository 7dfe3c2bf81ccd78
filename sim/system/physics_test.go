package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGravityAccumulates(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.w.Player.Pos = cp.Vector{X: 680, Y: 0}

	h.step(idle)
	if !approx(h.w.Player.Vel.Y, 0.38) || !approx(h.w.Player.Pos.Y, 0.38) {
		t.Fatalf("after one tick vel=%+v pos=%+v", h.w.Player.Vel, h.w.Player.Pos)
	}
	h.step(idle)
	if !approx(h.w.Player.Vel.Y, 0.76) || !approx(h.w.Player.Pos.Y, 1.14) {
		t.Fatalf("after two ticks vel=%+v pos=%+v", h.w.Player.Vel, h.w.Player.Pos)
	}
}

func TestHorizontalAccelerationAndFriction(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()

	h.step(right)
	if !approx(h.w.Player.Vel.X, 0.84) {
		t.Fatalf("vx = %v, want 0.84", h.w.Player.Vel.X)
	}
	h.step(right)
	if !approx(h.w.Player.Vel.X, 1.5456) {
		t.Fatalf("vx = %v, want 1.5456", h.w.Player.Vel.X)
	}
	if h.w.Player.Facing != 1 {
		t.Fatalf("facing = %d", h.w.Player.Facing)
	}

	h.hold(idle, 40)
	if h.w.Player.Vel.X != 0 {
		t.Fatalf("vx should snap to zero, got %v", h.w.Player.Vel.X)
	}
}

func TestSpeedCap(t *testing.T) {
	tests := []struct {
		name     string
		restored bool
		want     float64
	}{
		{name: "constrained", want: 2.1},
		{name: "restored", restored: true, want: 4.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, baseLevel+farNPCs).open()
			h.w.Progress.Restored = tt.restored
			h.settle()

			h.hold(right, 30)
			if !approx(h.w.Player.Vel.X, tt.want) {
				t.Fatalf("vx = %v, want %v", h.w.Player.Vel.X, tt.want)
			}
			h.hold(left, 30)
			if !approx(h.w.Player.Vel.X, -tt.want) || h.w.Player.Facing != -1 {
				t.Fatalf("vx = %v, want %v", h.w.Player.Vel.X, -tt.want)
			}
		})
	}
}

func TestWorldBoundsClampX(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()

	h.hold(left, 120)
	if h.w.Player.Pos.X != 0 || h.w.Player.Vel.X != 0 {
		t.Fatalf("pos=%+v vel=%+v", h.w.Player.Pos, h.w.Player.Vel)
	}

	h.w.Player.Pos = cp.Vector{X: 1969, Y: 0}
	h.w.Player.Vel = cp.Vector{X: 40}
	h.step(idle)
	if want := 2000 - h.w.Player.Width; h.w.Player.Pos.X != want || h.w.Player.Vel.X != 0 {
		t.Fatalf("x = %v, want %v", h.w.Player.Pos.X, want)
	}
}

func TestGroundJumpAndCut(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()

	evts := h.step(jumpPress)
	if got := jumps(evts); len(got) != 1 || got[0] != sim.JumpGround {
		t.Fatalf("jumps = %v", got)
	}
	if !approx(h.w.Player.Vel.Y, -11.62) || h.w.Player.JumpCount != 1 || h.w.Player.Grounded {
		t.Fatalf("after jump: %+v", h.w.Player)
	}
	if h.audio.count(sim.CueJump) != 1 {
		t.Fatalf("jump cue not played")
	}

	h.step(idle)
	if !approx(h.w.Player.Vel.Y, -11.62*0.5+0.38) {
		t.Fatalf("jump cut vy = %v", h.w.Player.Vel.Y)
	}
}

func TestDoubleJumpThenBuffer(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()

	h.step(jumpPress)
	h.step(jumpHold)
	evts := h.step(jumpPress)
	if got := jumps(evts); len(got) != 1 || got[0] != sim.JumpAir {
		t.Fatalf("second jump = %v", got)
	}
	if h.w.Player.JumpCount != 2 {
		t.Fatalf("jump count = %d", h.w.Player.JumpCount)
	}

	h.step(jumpHold)
	evts = h.step(jumpPress)
	if got := jumps(evts); len(got) != 0 {
		t.Fatalf("third press should not jump, got %v", got)
	}
	if h.w.Player.JumpBuffer != 7 {
		t.Fatalf("buffer = %d, want 7 after the press tick", h.w.Player.JumpBuffer)
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	p := &h.w.Player
	p.Pos = cp.Vector{X: 100, Y: 250}
	p.Vel = cp.Vector{}
	p.JumpCount = 2

	h.step(jumpPress)
	if p.JumpBuffer == 0 {
		t.Fatalf("press in the air should arm the buffer")
	}
	for i := 0; i < 3; i++ {
		if got := jumps(h.step(idle)); len(got) != 0 {
			t.Fatalf("tick %d: unexpected jump %v", i+2, got)
		}
	}
	got := jumps(h.step(idle))
	if len(got) != 1 || got[0] != sim.JumpBuffered {
		t.Fatalf("expected buffered jump on landing tick, got %v (pos=%+v)", got, p.Pos)
	}
	if p.Vel.Y != -12 || p.JumpCount != 1 || p.JumpBuffer != 0 {
		t.Fatalf("after buffered jump: %+v", *p)
	}
}

func TestJumpBufferExpires(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	p := &h.w.Player
	p.Pos = cp.Vector{X: 100, Y: 235}
	p.JumpCount = 2

	h.step(jumpPress)
	h.hold(idle, 20)
	if got := jumps(h.events); len(got) != 0 {
		t.Fatalf("buffer should have expired before landing, got %v", got)
	}
	if !p.Grounded || p.Vel.Y != 0 {
		t.Fatalf("player should have landed: %+v", *p)
	}
}

func TestCoyoteWindow(t *testing.T) {
	tests := []struct {
		name  string
		after int
		want  sim.JumpKind
	}{
		{name: "first air tick", after: 1, want: sim.JumpGround},
		{name: "last coyote tick", after: 6, want: sim.JumpGround},
		{name: "window closed", after: 7, want: sim.JumpAir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, baseLevel+farNPCs).open()
			p := &h.w.Player
			p.Pos = cp.Vector{X: 560, Y: 255}
			h.settle()
			if p.CoyoteTimer != 6 {
				t.Fatalf("coyote = %d after landing", p.CoyoteTimer)
			}

			// walk off the ledge: the player is over the gap from the next tick
			p.Pos.X = 601
			for i := 1; i < tt.after; i++ {
				h.step(idle)
			}
			got := jumps(h.step(jumpPress))
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("press %d ticks after leaving ground: %v, want %s", tt.after, got, tt.want)
			}
		})
	}
}

func TestCollisionResolution(t *testing.T) {
	plat := component.NewPlatform(100, 100, 200, 20, "step")

	tests := []struct {
		name     string
		pos      cp.Vector
		vel      cp.Vector
		wantPos  cp.Vector
		grounded bool
	}{
		{name: "landing", pos: cp.Vector{X: 150, Y: 60}, vel: cp.Vector{Y: 5}, wantPos: cp.Vector{X: 150, Y: 55}, grounded: true},
		{name: "head bump", pos: cp.Vector{X: 150, Y: 115}, vel: cp.Vector{Y: -5}, wantPos: cp.Vector{X: 150, Y: 120}},
		{name: "push left", pos: cp.Vector{X: 75, Y: 90}, vel: cp.Vector{X: 3}, wantPos: cp.Vector{X: 70, Y: 90}},
		{name: "push right", pos: cp.Vector{X: 295, Y: 90}, vel: cp.Vector{X: -3}, wantPos: cp.Vector{X: 300, Y: 90}},
		{name: "touching edge", pos: cp.Vector{X: 150, Y: 55}, wantPos: cp.Vector{X: 150, Y: 55}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := component.Player{Pos: tt.pos, Vel: tt.vel, Width: 30, Height: 45, JumpCount: 2}
			resolveCollisions(&p, []component.Platform{plat})
			if p.Pos != tt.wantPos || p.Grounded != tt.grounded {
				t.Fatalf("pos = %+v grounded = %v, want %+v %v", p.Pos, p.Grounded, tt.wantPos, tt.grounded)
			}
			if tt.grounded && (p.Vel.Y != 0 || p.JumpCount != 0) {
				t.Fatalf("landing should reset vy and jumps: %+v", p)
			}
		})
	}
}

func TestFreeFly(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()
	h.w.ToggleFreeFly()

	h.step(jumpPress)
	h.step(jumpHold)
	if h.w.Player.Vel.Y != -8 {
		t.Fatalf("free fly vy = %v", h.w.Player.Vel.Y)
	}
	h.step(idle)
	if !approx(h.w.Player.Vel.Y, -8+0.38) {
		t.Fatalf("release in free fly must not cut: vy = %v", h.w.Player.Vel.Y)
	}
}

func TestRespawnAfterFall(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.w.Player.Pos = cp.Vector{X: 680, Y: 901}
	h.w.Player.JumpCount = 2

	evts := h.step(idle)
	p := h.w.Player
	if p.Pos != h.w.Spawn || p.Vel != (cp.Vector{}) || p.JumpCount != 0 || p.CoyoteTimer != 0 {
		t.Fatalf("player not respawned: %+v", p)
	}
	if countKind(evts, sim.EventRespawn) != 1 || countKind(evts, sim.EventShake) != 1 || countKind(evts, sim.EventFlash) != 1 {
		t.Fatalf("events = %+v", evts)
	}
	if h.audio.count(sim.CueError) != 1 {
		t.Fatalf("error cue not played")
	}
	if h.w.State != sim.StatePlaying {
		t.Fatalf("respawn must not end play")
	}
}

func TestInvariantsUnderRandomInput(t *testing.T) {
	doc := baseLevel + farNPCs + `
checkpoints:
  - {x: 300, y_offset: 0}
  - {x: 500, y_offset: 0}
  - {x: 900, y_offset: 0}
`
	h := newHarness(t, doc).open()
	h.w.Progress.Restored = true
	rng := rand.New(rand.NewSource(7))

	lastCheckpoint := h.w.Progress.Checkpoint.X
	maxX := h.w.Level.World.Width - h.w.Player.Width
	held := false
	for i := 0; i < 3000; i++ {
		in := component.Intents{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(2) == 0,
			Jump:  rng.Intn(4) == 0,
		}
		in.JumpPressed = in.Jump && !held
		held = in.Jump
		h.step(in)

		p := h.w.Player
		if p.Pos.X < 0 || p.Pos.X > maxX {
			t.Fatalf("tick %d: x = %v out of bounds", i, p.Pos.X)
		}
		if cpX := h.w.Progress.Checkpoint.X; cpX < lastCheckpoint {
			t.Fatalf("tick %d: checkpoint moved back from %v to %v", i, lastCheckpoint, cpX)
		} else {
			lastCheckpoint = cpX
		}
		if p.Pos.Y > h.w.Level.GroundY+h.w.Level.FallThreshold {
			t.Fatalf("tick %d: player below the fall threshold after a tick", i)
		}
	}
}

func TestInputSuppressedAfterModal(t *testing.T) {
	h := newHarness(t, baseLevel+farNPCs).open()
	h.settle()

	h.step(jumpHold)
	h.w.Input.Clear()
	if !h.w.Input.Suppressed {
		t.Fatalf("held jump should suppress edges")
	}

	evts := h.step(jumpPress)
	if len(jumps(evts)) != 0 {
		t.Fatalf("press while suppressed must not jump")
	}
	h.step(idle)
	if h.w.Input.Suppressed {
		t.Fatalf("release should lift suppression")
	}
	h.settle()
	if len(jumps(h.step(jumpPress))) != 1 {
		t.Fatalf("fresh press should jump")
	}
}
