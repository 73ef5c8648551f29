// Package jump implements Jump Fuego: an endless runner in which walls
// scroll in from the right and the player jumps over them.
package jump

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
	gameID    = "jump"
	gameTitle = "Jump Fuego"
)

func init() {
	registry.Register(registry.GameInfo{ID: gameID, Title: gameTitle}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadJump(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg.Difficulty, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game is Jump Fuego.
type Game struct {
	*arcade.Machine

	cfg  config.JumpConfig
	diff *config.DifficultyManager

	player *entity.Entity
	body   physics.Jump
	vy     float64
}

// New creates the game with the given configuration.
func New(cfg config.JumpConfig) *Game {
	g := &Game{cfg: cfg}
	g.Machine = arcade.New(g)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// LossMessage is shown when the player runs into a wall.
func (g *Game) LossMessage() string { return g.cfg.Message }

// Burst configures the loss effect.
func (g *Game) Burst() config.BurstConfig { return g.cfg.Effects }

// HalfHeight is the vertical extent of the field above and below the origin.
func (g *Game) HalfHeight() float64 { return g.cfg.World.HalfHeight }

// Setup places the player on the floor and binds the jump.
func (g *Game) Setup(s *arcade.Session) {
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.body = physics.Jump{Floor: g.cfg.Physics.Floor}
	g.vy = 0

	p := g.cfg.Player
	g.player = s.Store.SpawnPlayer(p.Start.V3(), g.cfg.Collision.Half(p.Size), arcade.Model(p, core.ColorOrange))
	arcade.AddFloor(s, g.cfg.World.Floor)

	s.On(core.ActionJump, func(ev input.Event) {
		if ev.Down {
			g.body.Launch(&g.vy, g.cfg.Physics.JumpImpulse)
		}
	})
}

// Integrate moves the player through its jump and scrolls the walls.
func (g *Game) Integrate(s *arcade.Session) {
	g.body.Step(&g.player.Pos.Y, &g.vy, g.cfg.Physics.Gravity)

	speed := g.diff.Speed(g.cfg.Obstacles.Speed, s.Score(), s.Tick)
	s.Store.ForEachLive(func(e *entity.Entity) {
		e.Pos.X = physics.Scroll(e.Pos.X, speed)
	})
}

// Advance scores and removes walls that left the field, then maybe spawns
// a new one once the last wall is far enough away.
func (g *Game) Advance(s *arcade.Session) {
	ob := g.cfg.Obstacles
	s.Store.ForEachLive(func(e *entity.Entity) {
		if e.Pos.X < ob.DespawnX {
			s.Consume(e)
			s.Store.Despawn(e)
		}
	})

	if s.Rand.Float64() >= ob.SpawnChance {
		return
	}
	spacing := g.diff.Spacing(ob.MinSpacing, s.Score(), s.Tick)
	if last := s.Store.Last(); last != nil && last.Pos.X > ob.SpawnX-spacing {
		return
	}
	s.Store.SpawnObstacle(core.V(ob.SpawnX, ob.SpawnY), g.cfg.Collision.Half(ob.Size), arcade.Block(ob.Size, core.ColorBrightRed))
}

// Player returns the player entity of the current session.
func (g *Game) Player() *entity.Entity {
	return g.player
}

// Airborne reports whether the player is in the middle of a jump.
func (g *Game) Airborne() bool {
	return g.body.Airborne
}
