// Package flappy implements Flappy Fuego: the player flaps through the gaps
// of pipe pairs that scroll in from the right and are recycled once they
// leave the field.
package flappy

import (
	"math"

	"github.com/vovakirdan/fuego-arcade/internal/arcade"
	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/entity"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/physics"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
)

const (
	gameID    = "flappy"
	gameTitle = "Flappy Fuego"
)

func init() {
	registry.Register(registry.GameInfo{ID: gameID, Title: gameTitle}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg.Difficulty, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game is Flappy Fuego.
type Game struct {
	*arcade.Machine

	cfg  config.FlappyConfig
	diff *config.DifficultyManager

	bird *entity.Entity
	vy   float64
	// flap is latched by input and applied on the next tick.
	flap bool
	// pairs holds the top pipes; each links to its bottom pipe.
	pairs []*entity.Entity
}

// New creates the game with the given configuration.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{cfg: cfg}
	g.Machine = arcade.New(g)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// LossMessage is shown when the bird hits a pipe or leaves the field.
func (g *Game) LossMessage() string { return g.cfg.Message }

// Burst configures the loss effect.
func (g *Game) Burst() config.BurstConfig { return g.cfg.Effects }

// HalfHeight is the vertical extent of the field above and below the origin.
func (g *Game) HalfHeight() float64 { return g.cfg.World.HalfHeight }

// Setup places the bird and the initial pipe pairs.
func (g *Game) Setup(s *arcade.Session) {
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.vy = 0
	g.flap = false
	g.pairs = g.pairs[:0]

	p := g.cfg.Player
	g.bird = s.Store.SpawnPlayer(p.Start.V3(), g.cfg.Collision.Half(p.Size), arcade.Model(p.PlayerConfig, core.ColorOrange))
	arcade.AddFloor(s, g.cfg.World.Floor)

	pipes := g.cfg.Pipes
	for i := 0; i < pipes.Count; i++ {
		g.spawnPair(s, pipes.StartX+float64(i)*pipes.Spacing)
	}

	s.On(core.ActionJump, func(ev input.Event) {
		if ev.Down {
			g.flap = true
		}
	})
}

func (g *Game) spawnPair(s *arcade.Session, x float64) {
	pipes := g.cfg.Pipes
	half := g.cfg.Collision.Half(pipes.Size)
	prim := arcade.Block(pipes.Size, core.ColorGreen)

	top := s.Store.SpawnObstacle(core.V(x, 0), half, prim)
	bottom := s.Store.SpawnObstacle(core.V(x, 0), half, prim)
	top.Link, bottom.Link = bottom, top
	g.pairs = append(g.pairs, top)
	g.placeGap(s, top)
}

// placeGap picks a new gap center for a pair and positions both pipes
// around it.
func (g *Game) placeGap(s *arcade.Session, top *entity.Entity) {
	pipes := g.cfg.Pipes
	center := s.Rand.Float64()*2*pipes.CenterRange - pipes.CenterRange
	gap := g.diff.Gap(pipes.Gap, s.Score(), s.Tick)
	offset := gap + pipes.Size.Y/2

	top.Tag = center
	top.Pos.Y = center + offset
	top.Link.Pos.Y = center - offset
}

// Integrate applies the flap or gravity, checks the vertical bound and
// scrolls the pipes.
func (g *Game) Integrate(s *arcade.Session) {
	if g.flap {
		g.vy = g.cfg.Physics.FlapImpulse
		g.bird.Pos.Y += g.vy
		g.flap = false
	} else {
		g.bird.Pos.Y, g.vy = physics.Fall(g.bird.Pos.Y, g.vy, g.cfg.Physics.Gravity)
	}

	bound := g.cfg.Player.Bound
	if math.Abs(g.bird.Pos.Y) > bound {
		g.bird.Pos.Y = core.ClampF(g.bird.Pos.Y, -bound, bound)
		s.Lose(g.cfg.Message)
		return
	}

	speed := g.diff.Speed(g.cfg.Pipes.Speed, s.Score(), s.Tick)
	for _, top := range g.pairs {
		top.Pos.X = physics.Scroll(top.Pos.X, speed)
		top.Link.Pos.X = top.Pos.X
	}
}

// Advance scores pairs the bird has passed and recycles those that left
// the field.
func (g *Game) Advance(s *arcade.Session) {
	pipes := g.cfg.Pipes
	for _, top := range g.pairs {
		if top.Pos.X < pipes.RecycleX {
			top.Pos.X = pipes.ResetX
			top.Link.Pos.X = pipes.ResetX
			top.Consumed = false
			g.placeGap(s, top)
			continue
		}
		if !top.Consumed && top.Pos.X < g.bird.Pos.X {
			s.Consume(top)
		}
	}
}

// Bird returns the player entity of the current session.
func (g *Game) Bird() *entity.Entity {
	return g.bird
}
