package jump

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/arcade"
	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

type rig struct {
	g    *Game
	loop *sched.Loop
	in   *input.Dispatcher
}

func newRig(t *testing.T, cfg config.JumpConfig, seed int64) *rig {
	t.Helper()
	r := &rig{
		g:    New(cfg),
		loop: sched.NewLoop(log.New(io.Discard)),
		in:   input.NewDispatcher(),
	}
	sc := scene.New(80, 24, scene.TerminalViewport(cfg.World.HalfHeight))
	err := r.g.Mount(arcade.Env{Surface: sc, Loop: r.loop, Input: r.in, Logger: log.New(io.Discard), Seed: seed})
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	return r
}

func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.loop.RunFrame(r.loop.Now().Add(16 * time.Millisecond))
	}
}

func (r *rig) jump() {
	r.in.KeyDown(core.ActionJump, r.loop.Now())
	r.in.KeyUp(core.ActionJump, r.loop.Now())
}

func quietConfig() config.JumpConfig {
	cfg := config.DefaultJumpConfig()
	cfg.Obstacles.SpawnChance = 0
	return cfg
}

func (r *rig) wall(x float64) {
	ob := r.g.cfg.Obstacles
	r.g.Session().Store.SpawnObstacle(core.V(x, ob.SpawnY), r.g.cfg.Collision.Half(ob.Size), arcade.Block(ob.Size, core.ColorBrightRed))
}

func TestNoDoubleJump(t *testing.T) {
	cfg := quietConfig()
	r := newRig(t, cfg, 1)
	floor := cfg.Physics.Floor

	r.jump()
	r.ticks(1)
	if !r.g.Airborne() {
		t.Fatal("player did not leave the floor")
	}
	r.jump()
	r.ticks(1)

	want := floor + cfg.Physics.JumpImpulse + (cfg.Physics.JumpImpulse + cfg.Physics.Gravity)
	if y := r.g.Player().Pos.Y; math.Abs(y-want) > 1e-9 {
		t.Errorf("y = %v, expected %v; a mid-air jump reset the velocity", y, want)
	}
}

func TestJumpLandsOnFloor(t *testing.T) {
	cfg := quietConfig()
	r := newRig(t, cfg, 1)

	peak := cfg.Physics.Floor
	r.jump()
	for i := 0; i < 100; i++ {
		r.ticks(1)
		peak = math.Max(peak, r.g.Player().Pos.Y)
		if y := r.g.Player().Pos.Y; y < cfg.Physics.Floor {
			t.Fatalf("player sank below the floor: y=%v", y)
		}
	}

	if r.g.Airborne() {
		t.Error("player never landed")
	}
	if y := r.g.Player().Pos.Y; y != cfg.Physics.Floor {
		t.Errorf("landed at y=%v, expected %v", y, cfg.Physics.Floor)
	}
	if peak <= cfg.Physics.Floor+1 {
		t.Errorf("jump peaked at %v, too low to clear a wall", peak)
	}

	r.jump()
	r.ticks(1)
	if !r.g.Airborne() {
		t.Error("could not jump again after landing")
	}
}

func TestWallEndsGame(t *testing.T) {
	r := newRig(t, quietConfig(), 1)
	r.wall(0)

	r.ticks(30)

	st := r.g.State()
	if !st.GameOver() {
		t.Fatal("running into a wall did not end the game")
	}
	if st.Score != 0 {
		t.Errorf("score = %d, expected 0", st.Score)
	}
}

func TestClearedWallScores(t *testing.T) {
	r := newRig(t, quietConfig(), 1)
	r.wall(0)

	r.ticks(5)
	r.jump()
	r.ticks(80)

	st := r.g.State()
	if !st.Running() {
		t.Fatalf("jump did not clear the wall: %s", st.Message)
	}
	if st.Score != 1 {
		t.Errorf("score = %d, expected 1", st.Score)
	}
	if r.g.Session().Store.Len() != 0 {
		t.Error("wall not removed after leaving the field")
	}
}

func TestWallSpacing(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	cfg.Obstacles.SpawnChance = 1
	cfg.Player.Start.X = -100
	r := newRig(t, cfg, 1)

	for i := 0; i < 300; i++ {
		r.ticks(1)
		walls := r.g.Session().Store.Obstacles()
		for j := 1; j < len(walls); j++ {
			if d := walls[j].Pos.X - walls[j-1].Pos.X; d < cfg.Obstacles.MinSpacing-1e-9 {
				t.Fatalf("tick %d: walls %v apart, expected at least %v", i, d, cfg.Obstacles.MinSpacing)
			}
		}
	}
	if r.g.State().Score == 0 {
		t.Error("no wall scored in 300 ticks")
	}
}

func TestRestartGivesCleanSession(t *testing.T) {
	cfg := quietConfig()
	r := newRig(t, cfg, 1)
	r.wall(0)
	r.ticks(30)
	if !r.g.State().GameOver() {
		t.Fatal("expected a loss before restarting")
	}

	r.g.Restart()

	st := r.g.State()
	if st.Score != 0 || !st.Running() || st.Message != "" {
		t.Errorf("state after restart = %+v", st)
	}
	if r.g.Airborne() || r.g.Player().Pos.Y != cfg.Player.Start.Y {
		t.Errorf("player not back on the floor: y=%v", r.g.Player().Pos.Y)
	}
	if r.g.Session().Store.Len() != 0 {
		t.Error("walls survived the restart")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(gameID, registry.Options{Difficulty: config.DifficultyHard})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != gameID {
		t.Errorf("ID = %q, expected %q", g.ID(), gameID)
	}
}
