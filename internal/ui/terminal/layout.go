package terminal

import (
	"math"

	"github.com/zkjon/pong/internal/domain"
)

// grid maps field coordinates onto a rectangle of terminal cells.
type grid struct {
	left, top  int
	cols, rows int
	sx, sy     float64
}

func newGrid(left, top, cols, rows int, cfg domain.FieldConfig) grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return grid{
		left: left,
		top:  top,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / cfg.Width,
		sy:   float64(rows) / cfg.Height,
	}
}

func (g grid) cell(p domain.Vector2) (int, int) {
	x := int(math.Floor(p.X * g.sx))
	y := int(math.Floor(p.Y * g.sy))
	return g.left + clamp(x, 0, g.cols-1), g.top + clamp(y, 0, g.rows-1)
}

// span returns the first and last cell rows covered by [y, y+h).
func (g grid) span(y, h float64) (int, int) {
	_, first := g.cell(domain.Vector2{Y: y})
	last := int(math.Ceil((y+h)*g.sy)) - 1
	last = g.top + clamp(last, 0, g.rows-1)
	if last < first {
		last = first
	}
	return first, last
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
