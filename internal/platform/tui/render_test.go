package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

func TestRenderScreenKeepsRunsAndRows(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.SetCell(0, 0, 'a', core.ColorRed)
	s.SetCell(1, 0, 'b', core.ColorRed)
	s.SetCell(2, 0, 'c', core.ColorDefault)
	s.SetCell(3, 0, 'd', core.Color(200))

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, expected 2", n)
	}
	for _, want := range []string{"ab", "c", "d"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestDrawBanner(t *testing.T) {
	s := core.NewScreen(20, 5)
	drawBanner(s, "Oops", core.ColorRed)

	corners := []struct {
		x, y int
		r    rune
	}{
		{6, 1, '┌'}, {13, 1, '┐'}, {6, 3, '└'}, {13, 3, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if got := s.String(); !strings.Contains(got, "│ Oops │") {
		t.Errorf("message not centered in the box:\n%s", got)
	}
	if s.GetCell(8, 2).Color != core.ColorRed {
		t.Error("message lost its color")
	}
}

func TestDrawBannerFitsNarrowField(t *testing.T) {
	s := core.NewScreen(5, 3)
	drawBanner(s, "a long message", core.ColorRed)

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' {
		t.Errorf("box not clamped to the field:\n%s", s.String())
	}

	tiny := core.NewScreen(2, 2)
	drawBanner(tiny, "x", core.ColorRed)
	if strings.TrimSpace(tiny.String()) != "" {
		t.Errorf("banner drawn on a field too small for a box: %q", tiny.String())
	}
}
