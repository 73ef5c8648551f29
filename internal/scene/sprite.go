package scene

import "github.com/vovakirdan/fuego-arcade/internal/core"

// Sprite is a small piece of character art drawn centered on a position.
// Spaces are transparent.
type Sprite struct {
	Lines []string
	Color core.Color
}

// builtinSprites are registered on every new Scene.
var builtinSprites = map[string]Sprite{
	"fuego": {
		Lines: []string{
			" ▲ ",
			"▐█▌",
		},
		Color: core.ColorOrange,
	},
}

// draw paints the sprite centered on cell (cx, cy).
func (sp Sprite) draw(dst *core.Screen, cx, cy int) {
	top := cy - len(sp.Lines)/2
	for dy, line := range sp.Lines {
		runes := []rune(line)
		left := cx - len(runes)/2
		for dx, r := range runes {
			if r == ' ' {
				continue
			}
			dst.SetCell(left+dx, top+dy, r, sp.Color)
		}
	}
}
