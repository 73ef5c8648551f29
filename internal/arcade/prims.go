package arcade

import (
	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
)

// floorWidth spans any visible field; boxes are clipped by the surface.
const floorWidth = 40

// Block returns a solid box primitive.
func Block(size config.Vec, c core.Color) scene.Primitive {
	return scene.Primitive{Kind: scene.KindBox, Size: size.V3(), Color: c}
}

// Model returns the player's primitive: its sprite asset when one is named,
// a solid box otherwise.
func Model(p config.PlayerConfig, c core.Color) scene.Primitive {
	if p.Asset == "" {
		return Block(p.Size, c)
	}
	return scene.Primitive{Kind: scene.KindSprite, Asset: p.Asset, Size: p.Size.V3(), Color: c}
}

// AddFloor draws the ground line at y. A zero y draws nothing.
func AddFloor(s *Session, y float64) {
	if y == 0 {
		return
	}
	s.Store.AddScenery(scene.Primitive{
		Kind:  scene.KindBox,
		Size:  core.Vec3{X: floorWidth},
		Color: core.ColorGray,
		Glyph: '▔',
	}, core.V(0, y))
}
