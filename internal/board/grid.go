package board

// cell addresses one grid square.
type cell struct{ cx, cy int }

// grid buckets history slots by the GRID_SIZE square they fall in. It holds
// indexes into the history arena; the history owns the points.
type grid struct {
	size  int
	w, h  int // canvas bounds, inclusive
	cols  int
	rows  int
	cells [][]int
}

func newGrid(width, height, size int) *grid {
	g := &grid{
		size: size,
		w:    width,
		h:    height,
		cols: ceilDiv(width, size) + 1,
		rows: ceilDiv(height, size) + 1,
	}
	g.cells = make([][]int, g.cols*g.rows)
	return g
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// inBounds reports whether p may be indexed. The far edges are inclusive,
// which is why the grid carries one extra row and column.
func (g *grid) inBounds(p Point) bool {
	return !p.up && p.X >= 0 && p.Y >= 0 && p.X <= g.w && p.Y <= g.h
}

// cellOf returns the cell containing (x, y) and whether it lies in the grid.
func (g *grid) cellOf(x, y int) (cell, bool) {
	if x < 0 || y < 0 {
		return cell{}, false
	}
	c := cell{x / g.size, y / g.size}
	if c.cx >= g.cols || c.cy >= g.rows {
		return cell{}, false
	}
	return c, true
}

// insert indexes history slot idx holding p. Sentinels and out-of-bounds
// samples are skipped.
func (g *grid) insert(idx int, p Point) {
	if !g.inBounds(p) {
		return
	}
	c, _ := g.cellOf(p.X, p.Y)
	i := c.cy*g.cols + c.cx
	g.cells[i] = append(g.cells[i], idx)
}

// query returns the slots currently indexed in c. The slice is owned by the
// grid and must not be retained across remove.
func (g *grid) query(c cell) []int {
	return g.cells[c.cy*g.cols+c.cx]
}

// remove detaches slot idx from c.
func (g *grid) remove(idx int, c cell) bool {
	i := c.cy*g.cols + c.cx
	s := g.cells[i]
	for j, v := range s {
		if v == idx {
			s[j] = s[len(s)-1]
			g.cells[i] = s[:len(s)-1]
			return true
		}
	}
	return false
}

// reset drops every association.
func (g *grid) reset() {
	g.cells = make([][]int, g.cols*g.rows)
}

// occupied counts indexed slots across all cells.
func (g *grid) occupied() int {
	n := 0
	for _, s := range g.cells {
		n += len(s)
	}
	return n
}
