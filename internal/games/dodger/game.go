// Package dodger implements Falling Blocks: blocks drop from the top of
// the field and the player slides left and right to avoid them.
package dodger

import (
	"github.com/vovakirdan/fuego-arcade/internal/arcade"
	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/entity"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/physics"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
)

const (
	gameID    = "dodger"
	gameTitle = "Falling Blocks"
)

func init() {
	registry.Register(registry.GameInfo{ID: gameID, Title: gameTitle}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadDodger(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg.Difficulty, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game is Falling Blocks.
type Game struct {
	*arcade.Machine

	cfg  config.DodgerConfig
	diff *config.DifficultyManager

	player *entity.Entity
	left   *input.Ramp
	right  *input.Ramp
}

// New creates the game with the given configuration.
func New(cfg config.DodgerConfig) *Game {
	g := &Game{
		cfg:   cfg,
		left:  input.NewRamp(cfg.Input.Ramp),
		right: input.NewRamp(cfg.Input.Ramp),
	}
	g.Machine = arcade.New(g)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// LossMessage is shown when a block hits the player.
func (g *Game) LossMessage() string { return g.cfg.Message }

// Burst configures the loss effect.
func (g *Game) Burst() config.BurstConfig { return g.cfg.Effects }

// HalfHeight is the vertical extent of the field above and below the origin.
func (g *Game) HalfHeight() float64 { return g.cfg.World.HalfHeight }

// Setup spawns the player and binds lateral movement.
func (g *Game) Setup(s *arcade.Session) {
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.left.Reset()
	g.right.Reset()

	p := g.cfg.Player
	g.player = s.Store.SpawnPlayer(p.Start.V3(), g.cfg.Collision.Half(p.Size), arcade.Model(p.PlayerConfig, core.ColorBrightGreen))
	arcade.AddFloor(s, g.cfg.World.Floor)

	s.On(core.ActionMoveLeft, func(ev input.Event) { g.move(ev, g.left, -1) })
	s.On(core.ActionMoveRight, func(ev input.Event) { g.move(ev, g.right, 1) })
}

// move shifts the player by one step, or by the ramp speed in ramp mode.
func (g *Game) move(ev input.Event, ramp *input.Ramp, dir float64) {
	if !ev.Down {
		ramp.Release()
		return
	}
	step := g.cfg.Input.Step
	if g.cfg.Input.Mode == config.InputRamp {
		step = ramp.Press(ev.At)
	}
	g.player.Pos.X = physics.Lateral(g.player.Pos.X, dir*step, g.cfg.Player.MinX, g.cfg.Player.MaxX)
}

// Integrate drops every block and keeps the player inside its bounds.
func (g *Game) Integrate(s *arcade.Session) {
	g.player.Pos.X = core.ClampF(g.player.Pos.X, g.cfg.Player.MinX, g.cfg.Player.MaxX)

	fall := g.diff.Speed(g.cfg.Obstacles.FallSpeed, s.Score(), s.Tick)
	s.Store.ForEachLive(func(e *entity.Entity) {
		e.Pos.Y -= fall
	})
}

// Advance scores and removes blocks that left the field, then maybe
// spawns a new one.
func (g *Game) Advance(s *arcade.Session) {
	ob := g.cfg.Obstacles
	s.Store.ForEachLive(func(e *entity.Entity) {
		if e.Pos.Y < ob.DespawnY {
			s.Consume(e)
			s.Store.Despawn(e)
		}
	})

	if s.Rand.Float64() < ob.SpawnChance {
		x := ob.MinX + s.Rand.Float64()*(ob.MaxX-ob.MinX)
		s.Store.SpawnObstacle(core.V(x, ob.SpawnY), g.cfg.Collision.Half(ob.Size), arcade.Block(ob.Size, core.ColorRed))
	}
}

// Player returns the player entity of the current session.
func (g *Game) Player() *entity.Entity {
	return g.player
}
