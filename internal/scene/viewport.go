package scene

import "github.com/vovakirdan/fuego-arcade/internal/core"

// Viewport maps world coordinates onto a surface of cells or pixels.
// The vertical extent is fixed; the horizontal extent follows the surface
// aspect ratio, so resizing widens or narrows the visible field instead of
// stretching it.
type Viewport struct {
	Center     core.Vec3 // world point at the middle of the surface
	HalfHeight float64   // world units visible above and below Center
	CellAspect float64   // cell height / cell width: 2 for terminals, 1 for pixels
}

// TerminalViewport returns a viewport for character cells.
func TerminalViewport(halfHeight float64) Viewport {
	return Viewport{HalfHeight: halfHeight, CellAspect: 2}
}

// PixelViewport returns a viewport for square pixels.
func PixelViewport(halfHeight float64) Viewport {
	return Viewport{HalfHeight: halfHeight, CellAspect: 1}
}

// HalfWidth returns the world units visible left and right of Center on a
// w x h surface.
func (v Viewport) HalfWidth(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	aspect := v.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	return v.HalfHeight * float64(w) / (float64(h) * aspect)
}

// Project converts a world point to fractional surface coordinates, with
// (0, 0) at the top-left corner and y growing downwards.
func (v Viewport) Project(p core.Vec3, w, h int) (float64, float64) {
	hw := v.HalfWidth(w, h)
	if hw == 0 || v.HalfHeight == 0 {
		return 0, 0
	}
	col := (p.X - v.Center.X + hw) / (2 * hw) * float64(w)
	row := (v.Center.Y + v.HalfHeight - p.Y) / (2 * v.HalfHeight) * float64(h)
	return col, row
}

// Scale returns how many surface units one world unit covers on each axis.
func (v Viewport) Scale(w, h int) (float64, float64) {
	hw := v.HalfWidth(w, h)
	if hw == 0 || v.HalfHeight == 0 {
		return 0, 0
	}
	return float64(w) / (2 * hw), float64(h) / (2 * v.HalfHeight)
}
