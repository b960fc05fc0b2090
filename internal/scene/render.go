package scene

import (
	"math"

	"github.com/vovakirdan/tui-tycoon/internal/core"
)

// Render flattens the container tree rooted at root into dst.
//
// Containers render pre-order: a container's own content first, then its
// children in list order, so later children cover earlier ones and
// children cover their parent. Positions accumulate down the tree and
// scales multiply. Rotation is carried on containers but the cell
// backend does not apply it.
func Render(root *Container, dst *core.Screen) {
	if root == nil || dst == nil {
		return
	}
	renderInto(root, dst, 0, 0, 1, 1)
}

func renderInto(c *Container, dst *core.Screen, offX, offY, scaleX, scaleY float64) {
	if !c.Visible {
		return
	}
	effX := offX + c.X*scaleX
	effY := offY + c.Y*scaleY
	effSX := scaleX * c.ScaleX
	effSY := scaleY * c.ScaleY

	if p := c.painter; p != nil {
		drawGrid(dst, p.Grid(), effX, effY, effSX, effSY)
	}
	for _, child := range c.children {
		renderInto(child, dst, effX, effY, effSX, effSY)
	}
}

// drawGrid paints a cell grid at (x, y) scaled by (sx, sy) using
// nearest-neighbor sampling. Spaces and zero runes are transparent.
func drawGrid(dst *core.Screen, grid [][]core.Cell, x, y, sx, sy float64) {
	if len(grid) == 0 || sx <= 0 || sy <= 0 {
		return
	}
	natH := len(grid)
	natW := 0
	for _, row := range grid {
		if len(row) > natW {
			natW = len(row)
		}
	}

	outW := int(math.Round(float64(natW) * sx))
	outH := int(math.Round(float64(natH) * sy))
	baseX := int(math.Round(x))
	baseY := int(math.Round(y))

	for oy := 0; oy < outH; oy++ {
		srcY := int(float64(oy) / sy)
		if srcY >= natH {
			srcY = natH - 1
		}
		row := grid[srcY]
		for ox := 0; ox < outW; ox++ {
			srcX := int(float64(ox) / sx)
			if srcX >= len(row) {
				continue
			}
			cell := row[srcX]
			if cell.Rune == 0 || cell.Rune == ' ' {
				continue
			}
			dst.SetColored(baseX+ox, baseY+oy, cell.Rune, cell.Color)
		}
	}
}
