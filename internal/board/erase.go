package board

// Erase invalidates every indexed point within radius of center. Erased slots
// become PenUp in place, so history indexes never shift. A center outside the
// canvas, or a negative radius, is ignored.
func (b *Board) Erase(center Point, radius int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	if radius < 0 || center.up || center.X < 0 || center.Y < 0 || center.X >= b.opts.width || center.Y >= b.opts.height {
		return nil
	}
	n := b.erase(center, radius)
	if n > 0 {
		Logger().Debug("erase", "center", center.String(), "radius", radius, "erased", n)
	}
	return nil
}

// EraseAt erases with the configured default radius.
func (b *Board) EraseAt(center Point) error {
	return b.Erase(center, b.opts.eraseRadius)
}

// eraseCells returns the deduplicated cells holding the center and the
// corners and edge midpoints of the circle's bounding box.
func (g *grid) eraseCells(c Point, r int) []cell {
	out := make([]cell, 0, 9)
	for _, x := range [3]int{c.X + r, c.X - r, c.X} {
	next:
		for _, y := range [3]int{c.Y + r, c.Y - r, c.Y} {
			cl, ok := g.cellOf(x, y)
			if !ok {
				continue
			}
			for _, seen := range out {
				if seen == cl {
					continue next
				}
			}
			out = append(out, cl)
		}
	}
	return out
}

func (b *Board) erase(c Point, r int) int {
	r2 := r * r
	n := 0
	for _, cl := range b.grid.eraseCells(c, r) {
		slots := b.grid.query(cl)
		for i := 0; i < len(slots); {
			idx := slots[i]
			if SquaredDistance(b.hist.pts[idx], c) > r2 {
				i++
				continue
			}
			b.hist.pts[idx] = PenUp
			// remove swaps the last slot into i, so i is not advanced.
			b.grid.remove(idx, cl)
			slots = b.grid.query(cl)
			n++
		}
	}
	return n
}
