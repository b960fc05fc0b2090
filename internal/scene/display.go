package scene

import (
	"strings"

	"github.com/vovakirdan/tui-tycoon/internal/core"
)

// Display is a visual component that owns a scene node.
type Display interface {
	// Node returns the display's scene node.
	Node() *Node
	// NaturalSize returns the unscaled content size in cells.
	NaturalSize() (w, h int)
	// Destroy releases the display's node. At most once.
	Destroy()
}

// Label renders one or more lines of text in a single color.
type Label struct {
	node  *Node
	lines []string
	color core.Color
}

// NewLabel creates a label showing the given text. Newlines split the
// text into rows.
func NewLabel(text string, color core.Color) *Label {
	l := &Label{node: NewNode(), color: color}
	l.SetText(text)
	l.node.Container().SetPainter(l)
	return l
}

// Node returns the label's scene node.
func (l *Label) Node() *Node {
	return l.node
}

// Text returns the current text with newlines between rows.
func (l *Label) Text() string {
	return strings.Join(l.lines, "\n")
}

// SetText replaces the label content.
func (l *Label) SetText(text string) {
	l.lines = strings.Split(text, "\n")
}

// SetColor changes the color applied to every cell.
func (l *Label) SetColor(color core.Color) {
	l.color = color
}

// NaturalSize returns the widest row's rune count and the row count.
func (l *Label) NaturalSize() (int, int) {
	w := 0
	for _, line := range l.lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w, len(l.lines)
}

// Grid returns the label's rows as cells.
func (l *Label) Grid() [][]core.Cell {
	grid := make([][]core.Cell, len(l.lines))
	for i, line := range l.lines {
		runes := []rune(line)
		row := make([]core.Cell, len(runes))
		for j, r := range runes {
			row[j] = core.Cell{Rune: r, Color: l.color}
		}
		grid[i] = row
	}
	return grid
}

// Destroy releases the label's node.
func (l *Label) Destroy() {
	l.node.Destroy()
}

// Sprite renders a fixed character grid, typically icon art.
type Sprite struct {
	node *Node
	grid [][]core.Cell
	w, h int
}

// NewSprite creates a sprite from art rows in a single color.
// Spaces in the art are transparent when rendered.
func NewSprite(rows []string, color core.Color) *Sprite {
	s := &Sprite{node: NewNode(), h: len(rows)}
	s.grid = make([][]core.Cell, len(rows))
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) > s.w {
			s.w = len(runes)
		}
		cells := make([]core.Cell, len(runes))
		for j, r := range runes {
			cells[j] = core.Cell{Rune: r, Color: color}
		}
		s.grid[i] = cells
	}
	s.node.Container().SetPainter(s)
	return s
}

// Node returns the sprite's scene node.
func (s *Sprite) Node() *Node {
	return s.node
}

// NaturalSize returns the art dimensions in cells.
func (s *Sprite) NaturalSize() (int, int) {
	return s.w, s.h
}

// SetColor recolors every non-transparent cell of the art.
func (s *Sprite) SetColor(color core.Color) {
	for _, row := range s.grid {
		for i := range row {
			row[i].Color = color
		}
	}
}

// Grid returns the sprite's art cells.
func (s *Sprite) Grid() [][]core.Cell {
	return s.grid
}

// Destroy releases the sprite's node.
func (s *Sprite) Destroy() {
	s.node.Destroy()
}

// Gauge renders a horizontal progress bar.
type Gauge struct {
	node     *Node
	width    int
	progress float64
	color    core.Color
}

// NewGauge creates a gauge of the given cell width showing no progress.
func NewGauge(width int, color core.Color) *Gauge {
	g := &Gauge{node: NewNode(), width: width, color: color}
	g.node.Container().SetPainter(g)
	return g
}

// Node returns the gauge's scene node.
func (g *Gauge) Node() *Node {
	return g.node
}

// Progress returns the current fill in [0, 1].
func (g *Gauge) Progress() float64 {
	return g.progress
}

// SetProgress sets the fill, clamped to [0, 1].
func (g *Gauge) SetProgress(p float64) {
	g.progress = core.ClampF(p, 0, 1)
}

// NaturalSize returns the gauge width and a height of one cell.
func (g *Gauge) NaturalSize() (int, int) {
	return g.width, 1
}

// Grid returns one row: filled cells then empty cells.
func (g *Gauge) Grid() [][]core.Cell {
	row := make([]core.Cell, g.width)
	filled := int(g.progress * float64(g.width))
	if filled > g.width {
		filled = g.width
	}
	for i := range row {
		if i < filled {
			row[i] = core.Cell{Rune: '█', Color: g.color}
		} else {
			row[i] = core.Cell{Rune: '░', Color: core.ColorGray}
		}
	}
	return [][]core.Cell{row}
}

// Destroy releases the gauge's node.
func (g *Gauge) Destroy() {
	g.node.Destroy()
}
