// Package scene is the rendering collaborator the games draw through.
//
// Games only see the Surface interface: they create primitives, move them
// and dispose of them. Scene is the in-process implementation; it keeps the
// primitives in world space and rasterizes them into a core.Screen on
// Render. The terminal host prints that grid through Frame; the pixel
// window skips it and draws the primitives themselves through Each.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

var (
	// ErrAssetNotFound is returned by CreatePrimitive when a sprite asset
	// is not registered. The returned handle is still valid and renders as
	// a placeholder box.
	ErrAssetNotFound = errors.New("scene: asset not found")

	// ErrClosed is returned when creating primitives on a closed scene.
	ErrClosed = errors.New("scene: closed")
)

// Kind distinguishes primitive shapes.
type Kind int

const (
	KindBox Kind = iota
	KindPoints
	KindSprite
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPoints:
		return "points"
	case KindSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Primitive describes something drawable.
type Primitive struct {
	Kind  Kind
	Size  core.Vec3 // full world extents, used by boxes and sprite placeholders
	Color core.Color
	Glyph rune // fill rune; a per-kind default is used when zero

	// Asset names a registered sprite (KindSprite).
	Asset string

	// Points are world offsets from the primitive position (KindPoints).
	// The slice is not copied: callers must not reuse it until the
	// primitive is disposed.
	Points []core.Vec3
}

// Extents returns the full size of the primitive's bounding box.
func (p Primitive) Extents() core.Vec3 {
	if p.Kind != KindPoints || len(p.Points) == 0 {
		return p.Size
	}
	lo, hi := p.Points[0], p.Points[0]
	for _, q := range p.Points[1:] {
		lo = core.Vec3{X: math.Min(lo.X, q.X), Y: math.Min(lo.Y, q.Y), Z: math.Min(lo.Z, q.Z)}
		hi = core.Vec3{X: math.Max(hi.X, q.X), Y: math.Max(hi.Y, q.Y), Z: math.Max(hi.Z, q.Z)}
	}
	return hi.Sub(lo)
}

// Handle identifies a primitive owned by a Surface. Zero is never issued.
type Handle uint64

// Surface is what the simulation needs from a renderer.
type Surface interface {
	CreatePrimitive(p Primitive, pos core.Vec3) (Handle, error)
	Move(h Handle, pos core.Vec3)
	Dispose(h Handle)
	Size() (int, int)
	Render()
}

type item struct {
	prim        Primitive
	pos         core.Vec3
	placeholder bool
}

// Scene is a Surface that rasterizes into a character grid.
type Scene struct {
	view    Viewport
	frame   *core.Screen
	items   map[Handle]*item
	order   []Handle
	next    Handle
	sprites map[string]Sprite

	disposed int
	renders  int
	closed   bool
}

// New creates a scene of the given size with the built-in sprites
// registered.
func New(width, height int, view Viewport) *Scene {
	s := &Scene{
		view:    view,
		frame:   core.NewScreen(width, height),
		items:   make(map[Handle]*item),
		sprites: make(map[string]Sprite, len(builtinSprites)),
	}
	for name, sp := range builtinSprites {
		s.sprites[name] = sp
	}
	return s
}

// CreatePrimitive adds a primitive at pos. A missing sprite asset yields a
// usable placeholder handle together with an error wrapping
// ErrAssetNotFound.
func (s *Scene) CreatePrimitive(p Primitive, pos core.Vec3) (Handle, error) {
	if s.closed {
		return 0, ErrClosed
	}

	it := &item{prim: p, pos: pos}
	var err error
	if p.Kind == KindSprite {
		if _, ok := s.sprites[p.Asset]; !ok {
			it.placeholder = true
			err = fmt.Errorf("%w: %q", ErrAssetNotFound, p.Asset)
		}
	}

	s.next++
	s.items[s.next] = it
	s.order = append(s.order, s.next)
	return s.next, err
}

// Move updates a primitive's position. Unknown handles are ignored.
func (s *Scene) Move(h Handle, pos core.Vec3) {
	if it, ok := s.items[h]; ok {
		it.pos = pos
	}
}

// Dispose releases a primitive. Disposing twice is a no-op.
func (s *Scene) Dispose(h Handle) {
	if _, ok := s.items[h]; !ok {
		return
	}
	delete(s.items, h)
	s.disposed++
}

// Size returns the surface dimensions in cells.
func (s *Scene) Size() (int, int) {
	return s.frame.Width(), s.frame.Height()
}

// Resize changes the surface dimensions. Primitives stay in world space,
// so the next Render lays them out for the new size.
func (s *Scene) Resize(width, height int) {
	s.frame.Resize(width, height)
}

// Viewport returns the camera.
func (s *Scene) Viewport() Viewport {
	return s.view
}

// Render rasterizes every live primitive, in creation order, into the frame.
func (s *Scene) Render() {
	s.frame.Clear()
	w, h := s.Size()

	live := s.order[:0]
	for _, id := range s.order {
		it, ok := s.items[id]
		if !ok {
			continue
		}
		live = append(live, id)
		s.draw(it, w, h)
	}
	s.order = live
	s.renders++
}

func (s *Scene) draw(it *item, w, h int) {
	switch {
	case it.prim.Kind == KindPoints:
		glyph := glyphOr(it.prim.Glyph, '*')
		for _, off := range it.prim.Points {
			col, row := s.view.Project(it.pos.Add(off), w, h)
			s.frame.SetCell(int(math.Floor(col)), int(math.Floor(row)), glyph, it.prim.Color)
		}
	case it.prim.Kind == KindSprite && !it.placeholder:
		col, row := s.view.Project(it.pos, w, h)
		s.sprites[it.prim.Asset].draw(s.frame, int(math.Floor(col)), int(math.Floor(row)))
	default:
		glyph := glyphOr(it.prim.Glyph, '█')
		if it.placeholder {
			glyph = '?'
		}
		s.frame.DrawRect(s.cellRect(it.pos, it.prim.Size, w, h), glyph, it.prim.Color)
	}
}

// cellRect returns the cells covered by a world box, at least one cell wide
// and tall.
func (s *Scene) cellRect(pos, size core.Vec3, w, h int) core.Rect {
	half := size.Scale(0.5)
	x0, y0 := s.view.Project(core.Vec3{X: pos.X - half.X, Y: pos.Y + half.Y}, w, h)
	x1, y1 := s.view.Project(core.Vec3{X: pos.X + half.X, Y: pos.Y - half.Y}, w, h)

	left, top := int(math.Floor(x0)), int(math.Floor(y0))
	right, bottom := int(math.Ceil(x1)), int(math.Ceil(y1))
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	return core.NewRect(left, top, right-left, bottom-top)
}

func glyphOr(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}

// Frame returns the grid produced by the last Render.
func (s *Scene) Frame() *core.Screen {
	return s.frame
}

// Each calls fn for every live primitive in draw order. placeholder is true
// for sprites whose asset was missing.
func (s *Scene) Each(fn func(p Primitive, pos core.Vec3, placeholder bool)) {
	for _, id := range s.order {
		if it, ok := s.items[id]; ok {
			fn(it.prim, it.pos, it.placeholder)
		}
	}
}

// Sprite returns a registered sprite asset.
func (s *Scene) Sprite(name string) (Sprite, bool) {
	sp, ok := s.sprites[name]
	return sp, ok
}

// Live returns the number of primitives not yet disposed.
func (s *Scene) Live() int {
	return len(s.items)
}

// Disposed returns how many primitives have been released.
func (s *Scene) Disposed() int {
	return s.disposed
}

// Renders returns how many times Render has run.
func (s *Scene) Renders() int {
	return s.renders
}

// Close disposes every primitive and refuses new ones.
func (s *Scene) Close() {
	for id := range s.items {
		s.Dispose(id)
	}
	s.order = nil
	s.closed = true
}
