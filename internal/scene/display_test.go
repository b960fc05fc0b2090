package scene

import (
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/core"
)

func TestLabelNaturalSize(t *testing.T) {
	l := NewLabel("Venture Bank", core.ColorWhite)
	w, h := l.NaturalSize()
	if w != 12 || h != 1 {
		t.Errorf("NaturalSize = (%d, %d), expected (12, 1)", w, h)
	}

	l.SetText("ab\nlonger line\nc")
	w, h = l.NaturalSize()
	if w != 11 || h != 3 {
		t.Errorf("NaturalSize after SetText = (%d, %d), expected (11, 3)", w, h)
	}
}

func TestLabelGrid(t *testing.T) {
	l := NewLabel("$5", core.ColorGold)
	grid := l.Grid()

	if len(grid) != 1 || len(grid[0]) != 2 {
		t.Fatalf("grid dimensions wrong: %d rows", len(grid))
	}
	if grid[0][0].Rune != '$' || grid[0][0].Color != core.ColorGold {
		t.Errorf("grid[0][0] = %+v, expected gold '$'", grid[0][0])
	}
	if l.Text() != "$5" {
		t.Errorf("Text() = %q, expected %q", l.Text(), "$5")
	}
}

func TestLabelIsItsOwnPainter(t *testing.T) {
	l := NewLabel("x", core.ColorWhite)
	if l.Node().Container().Painter() == nil {
		t.Error("label should install itself as its container's painter")
	}
}

func TestSpriteNaturalSize(t *testing.T) {
	s := NewSprite([]string{
		"  ▲  ",
		" ███ ",
		"█████",
	}, core.ColorGreen)

	w, h := s.NaturalSize()
	if w != 5 || h != 3 {
		t.Errorf("NaturalSize = (%d, %d), expected (5, 3)", w, h)
	}

	grid := s.Grid()
	if grid[0][2].Rune != '▲' || grid[0][2].Color != core.ColorGreen {
		t.Errorf("grid[0][2] = %+v, expected green '▲'", grid[0][2])
	}
}

func TestGaugeProgressClamps(t *testing.T) {
	g := NewGauge(10, core.ColorCyan)

	if g.Progress() != 0 {
		t.Errorf("initial progress = %v, expected 0", g.Progress())
	}

	g.SetProgress(1.7)
	if g.Progress() != 1 {
		t.Errorf("progress after SetProgress(1.7) = %v, expected clamp to 1", g.Progress())
	}

	g.SetProgress(-0.3)
	if g.Progress() != 0 {
		t.Errorf("progress after SetProgress(-0.3) = %v, expected clamp to 0", g.Progress())
	}
}

func TestGaugeGridFill(t *testing.T) {
	g := NewGauge(10, core.ColorCyan)
	g.SetProgress(0.5)

	grid := g.Grid()
	if len(grid) != 1 || len(grid[0]) != 10 {
		t.Fatalf("gauge grid should be 1x10")
	}

	for i := 0; i < 5; i++ {
		if grid[0][i].Rune != '█' {
			t.Errorf("cell %d should be filled at 50%%", i)
		}
	}
	for i := 5; i < 10; i++ {
		if grid[0][i].Rune != '░' {
			t.Errorf("cell %d should be empty at 50%%", i)
		}
	}

	w, h := g.NaturalSize()
	if w != 10 || h != 1 {
		t.Errorf("NaturalSize = (%d, %d), expected (10, 1)", w, h)
	}
}

func TestDisplayDestroyDetaches(t *testing.T) {
	parent := NewContainer()
	var displays = []Display{
		NewLabel("x", core.ColorWhite),
		NewSprite([]string{"#"}, core.ColorWhite),
		NewGauge(4, core.ColorWhite),
	}

	for _, d := range displays {
		parent.AddChild(d.Node().Container())
	}
	if len(parent.Children()) != 3 {
		t.Fatalf("expected 3 attached displays")
	}

	for _, d := range displays {
		d.Destroy()
	}
	if len(parent.Children()) != 0 {
		t.Error("destroyed displays should detach from the tree")
	}
}
