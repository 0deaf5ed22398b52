// Package board holds the stroke history of a freehand drawing surface, the
// grid index that keeps local erasure cheap, and the live render and cropped
// raster export built on top of them.
//
// A Board is one drawing session. All of its methods lock a single mutex, so
// an input callback and a render loop may share it:
//
//	b := board.New(board.WithCanvas(1280, 720))
//	_ = b.AppendSample(board.Pt(10, 10))
//	_ = b.AppendSample(board.Pt(50, 50))
//	_ = b.AppendPenUp()
//	snap, err := b.Export(board.AllTraces)
//
// While the board is disabled every operation returns ErrDisabled and leaves
// the state untouched.
package board

import (
	"errors"
	"sync"
)

var (
	// ErrDisabled is returned by every gated operation while the board is disabled.
	ErrDisabled = errors.New("board disabled")
	// ErrNothingToExport means the export subject holds no drawable segment.
	ErrNothingToExport = errors.New("nothing to export")
)

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultGridSize    = 20
	DefaultEraseRadius = 15
	DefaultMargin      = 20
	DefaultStrokeWidth = 3
)

// Option configures a Board.
type Option func(*options)

type options struct {
	width, height int
	gridSize      int
	strokeWidth   int
	eraseRadius   int
	margin        int
	bridge        BridgeMode
	color         Color
}

func defaultOptions() options {
	return options{
		width:       DefaultWidth,
		height:      DefaultHeight,
		gridSize:    DefaultGridSize,
		strokeWidth: DefaultStrokeWidth,
		eraseRadius: DefaultEraseRadius,
		margin:      DefaultMargin,
		bridge:      BridgeSuppress,
		color:       Purple,
	}
}

// WithCanvas sets the canvas size in pixels.
func WithCanvas(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithGridSize sets the side of a grid cell in pixels.
func WithGridSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.gridSize = n
		}
	}
}

// WithStrokeWidth sets the width of rendered and exported connectors.
func WithStrokeWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.strokeWidth = n
		}
	}
}

// WithEraseRadius sets the radius used by EraseAt.
func WithEraseRadius(r int) Option {
	return func(o *options) {
		if r >= 0 {
			o.eraseRadius = r
		}
	}
}

// WithMargin sets the export padding.
func WithMargin(m int) Option {
	return func(o *options) {
		if m >= 0 {
			o.margin = m
		}
	}
}

// WithBridge selects how live render treats tiny gaps left by erasing.
func WithBridge(mode BridgeMode) Option {
	return func(o *options) { o.bridge = mode }
}

// WithColor sets the initial pen color.
func WithColor(c Color) Option {
	return func(o *options) {
		if c.Valid() {
			o.color = c
		}
	}
}

// history is an arena of sample slots addressed by stable index. Erasing
// overwrites a slot with PenUp instead of removing it.
type history struct {
	pts []Point
}

func (h *history) append(p Point) int {
	h.pts = append(h.pts, p)
	return len(h.pts) - 1
}

// lastTrace returns the index just past the most recent sentinel.
func (h *history) lastTrace() int {
	for i := len(h.pts) - 1; i >= 0; i-- {
		if h.pts[i].up {
			return i + 1
		}
	}
	return 0
}

// Board is a drawing session: the history, its grid index, the pen state and
// the enable gate, guarded by one mutex.
type Board struct {
	mu       sync.Mutex
	opts     options
	disabled bool
	color    Color
	hist     history
	grid     *grid
}

// New creates an empty, enabled board.
func New(opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Board{
		opts:  o,
		color: o.color,
		grid:  newGrid(o.width, o.height, o.gridSize),
	}
}

// Size returns the canvas dimensions.
func (b *Board) Size() (width, height int) {
	return b.opts.width, b.opts.height
}

// SetEnabled opens or closes the gate on every other operation.
func (b *Board) SetEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled == !on {
		return
	}
	b.disabled = !on
	Logger().Info("board gate changed", "enabled", on)
}

// Enabled reports whether the board accepts operations.
func (b *Board) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.disabled
}

// AppendSample records a pointer sample. Samples outside the canvas are kept
// in the history but not indexed.
func (b *Board) AppendSample(p Point) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	idx := b.hist.append(p)
	b.grid.insert(idx, p)
	return nil
}

// AppendPenUp ends the current stroke.
func (b *Board) AppendPenUp() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	b.hist.append(PenUp)
	return nil
}

// BeginStroke separates the next sample from the run before it. It appends
// a pen-up only when the last slot holds a real sample, so a finished stroke
// stays the last trace until another one starts.
func (b *Board) BeginStroke() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	if n := len(b.hist.pts); n > 0 && !b.hist.pts[n-1].up {
		b.hist.append(PenUp)
	}
	return nil
}

// Clear empties the history and the grid together.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	n := len(b.hist.pts)
	b.hist.pts = nil
	b.grid.reset()
	Logger().Info("board cleared", "samples", n)
	return nil
}

// SetColor changes the active stroke color used by RenderAll.
func (b *Board) SetColor(c Color) error {
	if !c.Valid() {
		return ErrUnknownColor
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	b.color = c
	return nil
}

// Color returns the active stroke color.
func (b *Board) Color() Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.color
}

// SetBridge switches the gap-bridging behavior of RenderAll.
func (b *Board) SetBridge(mode BridgeMode) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	b.opts.bridge = mode
	return nil
}

// Bridge returns the current gap-bridging behavior.
func (b *Board) Bridge() BridgeMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts.bridge
}

// Len returns the number of history slots, sentinels included.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.hist.pts)
}

// At returns history slot i.
func (b *Board) At(i int) Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist.pts[i]
}

// Strokes lists the runs of real points currently in the history.
func (b *Board) Strokes() ([]Stroke, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return nil, ErrDisabled
	}
	var out []Stroke
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		r, _ := extent(b.hist.pts[start:end])
		out = append(out, Stroke{Start: start, End: end, Bounds: r})
		start = -1
	}
	for i, p := range b.hist.pts {
		if p.up {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(b.hist.pts))
	return out, nil
}

// extent returns the inclusive box of the real points in pts.
func extent(pts []Point) (Rect, bool) {
	var r Rect
	found := false
	for _, p := range pts {
		if p.up {
			continue
		}
		if !found {
			r = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			found = true
			continue
		}
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, found
}
