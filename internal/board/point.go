package board

import "fmt"

// Point is a pointer sample in canvas pixel space, or the pen-up marker that
// separates strokes in the history.
type Point struct {
	X, Y int
	up   bool
}

// PenUp is the stroke-break sentinel.
var PenUp = Point{up: true}

// Pt returns a real sample at (x, y).
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// IsPenUp reports whether p is the sentinel.
func (p Point) IsPenUp() bool { return p.up }

func (p Point) String() string {
	if p.up {
		return "up"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// SquaredDistance returns the squared euclidean distance between p and q.
// It is 0 when either point is the sentinel, so callers that use it as a
// proximity test must check IsPenUp as well.
func SquaredDistance(p, q Point) int {
	if p.up || q.up {
		return 0
	}
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned box in canvas pixels. Max is exclusive once padded
// for export, inclusive while accumulating sample extents.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (r Rect) Dx() int { return r.MaxX - r.MinX }
func (r Rect) Dy() int { return r.MaxY - r.MinY }

// Stroke describes one run of real points between sentinels.
type Stroke struct {
	Start  int // history index of the first point
	End    int // history index one past the last point
	Bounds Rect
}

// Len returns the number of points in the stroke.
func (s Stroke) Len() int { return s.End - s.Start }
