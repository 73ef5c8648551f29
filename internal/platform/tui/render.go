package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

// ansiCodes holds the 256-color foreground for each core.Color. An empty
// code leaves the terminal's own foreground in place.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleOf(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen styles a frame for the terminal. Each row is cut into runs
// of same-colored cells and every run is rendered with a single style.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	run := make([]rune, 0, s.Width())
	for y := range rows {
		var line strings.Builder
		run = run[:0]
		var color core.Color
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if len(run) > 0 && c.Color != color {
				line.WriteString(styleOf(color).Render(string(run)))
				run = run[:0]
			}
			color = c.Color
			run = append(run, c.Rune)
		}
		if len(run) > 0 {
			line.WriteString(styleOf(color).Render(string(run)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// drawBanner frames msg in a box across the middle of the field. The box
// shrinks to the field width; text that still does not fit is clipped.
func drawBanner(s *core.Screen, msg string, c core.Color) {
	w := core.Clamp(len([]rune(msg))+4, 0, s.Width())
	if w < 3 || s.Height() < 3 {
		return
	}
	y := s.Height()/2 - 1
	box := core.NewRect((s.Width()-w)/2, y, w, 3)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	s.DrawTextCentered(y+1, msg, c)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lossStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// hud renders the status line and the key help below the play field.
func (m Model) hud() string {
	st := m.game.State()
	line := titleStyle.Render(m.game.Title()) + "  " + scoreStyle.Render(fmt.Sprintf("Score: %d", st.Score))
	if st.GameOver() {
		line += "  " + lossStyle.Render("GAME OVER")
	}
	m.help.Width = m.config.ScreenW
	return line + "\n" + m.help.View(m.keys)
}
