// Package window runs an arcade game in a desktop window with Ebitengine.
// Primitives are drawn straight from the scene in pixel space; the cell
// grid only sizes the surface the games see.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fuego-arcade/internal/arcade"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

// cellPx is the side of one scene cell in pixels.
const cellPx = 8

// autorepeat kicks in after 15 ticks of holding and fires every 3 ticks
// after that.
var autorepeat = input.Repeat{Delay: 15, Every: 3}

// dotRadius is the size of a point primitive in pixels.
const dotRadius = 2

var bindings = []input.Binding[ebiten.Key]{
	{Action: core.ActionMoveLeft, Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{Action: core.ActionMoveRight, Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{Action: core.ActionJump, Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

var background = color.RGBA{0x14, 0x14, 0x1e, 0xff}

// Window adapts a mounted game to ebiten.Game.
type Window struct {
	game   registry.Game
	scene  *scene.Scene
	loop   *sched.Loop
	input  *input.Dispatcher
	logger *log.Logger
}

// New mounts the game on a surface of cfg.ScreenW by cfg.ScreenH cells.
func New(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	half := 4.0
	if f, ok := game.(interface{ HalfHeight() float64 }); ok {
		half = f.HalfHeight()
	}

	w := &Window{
		game:   game,
		scene:  scene.New(cfg.ScreenW, cfg.ScreenH, scene.PixelViewport(half)),
		loop:   sched.NewLoop(logger),
		input:  input.NewDispatcher(),
		logger: logger,
	}
	err := game.Mount(arcade.Env{
		Surface: w.scene,
		Loop:    w.loop,
		Input:   w.input,
		Logger:  logger,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("window: mount %s: %w", game.ID(), err)
	}
	return w, nil
}

// Update feeds key transitions to the dispatcher and runs one frame.
func (w *Window) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.shutdown(now)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.input.ReleaseAll(now)
		w.game.Restart()
	}

	input.Feed(w.input, bindings, inpututil.KeyPressDuration, autorepeat, now)
	w.loop.RunFrame(now)
	return nil
}

// shutdown releases held keys, tears the session down and frees the
// scene. It is safe to call more than once.
func (w *Window) shutdown(now time.Time) {
	w.input.ReleaseAll(now)
	w.game.Unmount()
	w.scene.Close()
}

// Draw paints every live primitive for the current window size.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	b := screen.Bounds()
	pw, ph := b.Dx(), b.Dy()
	view := w.scene.Viewport()
	sx, sy := view.Scale(pw, ph)

	w.scene.Each(func(p scene.Primitive, pos core.Vec3, placeholder bool) {
		switch {
		case p.Kind == scene.KindPoints:
			for _, off := range p.Points {
				x, y := view.Project(pos.Add(off), pw, ph)
				vector.DrawFilledCircle(screen, float32(x), float32(y), dotRadius, colorOf(p.Color), true)
			}
		case p.Kind == scene.KindSprite && !placeholder:
			sp, _ := w.scene.Sprite(p.Asset)
			x, y := view.Project(pos, pw, ph)
			drawSprite(screen, sp, x, y)
		default:
			x, y := view.Project(core.Vec3{X: pos.X - p.Size.X/2, Y: pos.Y + p.Size.Y/2}, pw, ph)
			rw, rh := float32(max(p.Size.X*sx, 1)), float32(max(p.Size.Y*sy, 1))
			if placeholder {
				vector.StrokeRect(screen, float32(x), float32(y), rw, rh, 1, colorOf(core.ColorMagenta), false)
				return
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), rw, rh, colorOf(p.Color), false)
		}
	})

	st := w.game.State()
	hud := fmt.Sprintf("%s  Score: %d", w.game.Title(), st.Score)
	if st.GameOver() {
		hud += "\n" + st.Message
	}
	ebitenutil.DebugPrint(screen, hud)
}

// drawSprite fills one cellPx square per visible rune, centered on (cx, cy).
func drawSprite(dst *ebiten.Image, sp scene.Sprite, cx, cy float64) {
	top := cy - float64(len(sp.Lines)*cellPx)/2
	for row, line := range sp.Lines {
		runes := []rune(line)
		left := cx - float64(len(runes)*cellPx)/2
		for col, r := range runes {
			if r == ' ' {
				continue
			}
			x, y := left+float64(col*cellPx), top+float64(row*cellPx)
			vector.DrawFilledRect(dst, float32(x), float32(y), cellPx, cellPx, colorOf(sp.Color), false)
		}
	}
}

// Layout resizes the scene to the window; the camera keeps its vertical
// extent and widens with the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.scene.Resize(max(outsideWidth/cellPx, 1), max(outsideHeight/cellPx, 1))
	return outsideWidth, outsideHeight
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w, err := New(game, cfg, logger)
	if err != nil {
		return err
	}
	defer w.shutdown(time.Now())

	ebiten.SetWindowSize(cfg.ScreenW*cellPx, cfg.ScreenH*cellPx)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
