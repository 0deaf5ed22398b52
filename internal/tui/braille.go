package tui

import (
	"image/color"

	"blackboard/internal/board"
)

// dotBits maps a dot column (0,1) and row (0..3) inside a cell to its bit in
// the braille pattern block U+2800.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a w x h cell canvas with a 2x4 dot grid per cell. It is the
// live board.Surface of the drawing pad: canvas pixels are scaled down to
// dots and every connector becomes a Bresenham line.
type brailleBuf struct {
	w, h   int // in cells
	cw, ch int // board canvas in pixels
	m      [][]uint8
	col    color.Color
	lines  int
}

func newBrailleBuf(w, h, canvasW, canvasH int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, cw: canvasW, ch: canvasH, m: m}
}

// toDots scales a canvas point to dot coordinates.
func (b *brailleBuf) toDots(p board.Point) (int, int) {
	return p.X * b.w * 2 / b.cw, p.Y * b.h * 4 / b.ch
}

func (b *brailleBuf) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

// DrawLine implements board.Surface. Width is ignored: a dot is already
// wider than any pen at terminal resolution.
func (b *brailleBuf) DrawLine(from, to board.Point, c color.Color, _ int) {
	b.col = c
	b.lines++
	x0, y0 := b.toDots(from)
	x1, y1 := b.toDots(to)
	b.line(x0, y0, x1, y1)
}

func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	row := make([]rune, b.w)
	for y := range b.m {
		for x, mask := range b.m[y] {
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
