package board

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// ExportMode picks the export subject.
type ExportMode int

const (
	// LastTrace exports the run after the most recent sentinel, squared.
	LastTrace ExportMode = 0
	// AllTraces exports the whole history.
	AllTraces ExportMode = 1
)

func (m ExportMode) String() string {
	switch m {
	case LastTrace:
		return "last"
	case AllTraces:
		return "all"
	default:
		return fmt.Sprintf("ExportMode(%d)", int(m))
	}
}

// ParseExportMode accepts "last"/"0" and "all"/"1".
func ParseExportMode(s string) (ExportMode, error) {
	switch s {
	case "last", "0", "":
		return LastTrace, nil
	case "all", "1":
		return AllTraces, nil
	default:
		return 0, fmt.Errorf("unknown export mode %q", s)
	}
}

var (
	exportBackground = color.White
	exportForeground = color.Black
)

// Snapshot is a cropped export. Origin maps buffer (0,0) back to canvas space
// and may be negative after a last-trace box is squared.
type Snapshot struct {
	Image  *image.RGBA
	Origin image.Point
}

// Export rasterizes the subject of mode into a standalone buffer. Gap
// bridging is never applied here. A subject without a single connector
// yields ErrNothingToExport.
func (b *Board) Export(mode ExportMode) (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return nil, ErrDisabled
	}
	subject, err := b.subject(mode)
	if err != nil {
		return nil, err
	}
	box, err := b.exportBox(subject, mode)
	if err != nil {
		return nil, err
	}
	if walk(subject, false, func(Point, Point) {}) == 0 {
		return nil, ErrNothingToExport
	}

	origin := image.Pt(box.MinX, box.MinY)
	surf := newImageSurface(box.Dx(), box.Dy(), origin, exportBackground)
	defer surf.Close()
	walk(subject, false, func(from, to Point) {
		surf.DrawLine(from, to, exportForeground, b.opts.strokeWidth)
	})
	Logger().Debug("export", "mode", mode.String(), "origin", origin, "width", box.Dx(), "height", box.Dy())
	return &Snapshot{Image: surf.Image(), Origin: origin}, nil
}

// Bounds returns the box Export would use for mode, padded and clamped, and
// squared for LastTrace. A single-point subject still has a box here even
// though Export reports nothing to draw.
func (b *Board) Bounds(mode ExportMode) (Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return Rect{}, ErrDisabled
	}
	subject, err := b.subject(mode)
	if err != nil {
		return Rect{}, err
	}
	return b.exportBox(subject, mode)
}

func (b *Board) subject(mode ExportMode) ([]Point, error) {
	var s []Point
	switch mode {
	case LastTrace:
		s = b.hist.pts[b.hist.lastTrace():]
	case AllTraces:
		s = b.hist.pts
	default:
		return nil, fmt.Errorf("unknown export mode %d", int(mode))
	}
	if len(s) == 0 {
		return nil, ErrNothingToExport
	}
	return s, nil
}

func (b *Board) exportBox(subject []Point, mode ExportMode) (Rect, error) {
	r, ok := extent(subject)
	if !ok {
		return Rect{}, ErrNothingToExport
	}
	m := b.opts.margin
	box := Rect{
		MinX: max(0, r.MinX-m),
		MinY: max(0, r.MinY-m),
		MaxX: min(b.opts.width, r.MaxX+m),
		MaxY: min(b.opts.height, r.MaxY+m),
	}
	if box.Dx() <= 0 || box.Dy() <= 0 {
		// every real point sits beyond the far canvas edge
		return Rect{}, ErrNothingToExport
	}
	if mode == LastTrace {
		w, h := box.Dx(), box.Dy()
		if w > h {
			box.MinY -= (w - h) / 2
		} else {
			box.MinX -= (h - w) / 2
		}
		side := max(w, h)
		box.MaxX, box.MaxY = box.MinX+side, box.MinY+side
	}
	return box, nil
}

// ImageSurface is a Surface backed by an anti-aliased raster. Canvas points
// are translated by origin before drawing.
type ImageSurface struct {
	dc     *gg.Context
	origin image.Point
}

// NewImageSurface returns a canvas-sized surface filled with bg.
func NewImageSurface(width, height int, bg color.Color) *ImageSurface {
	return newImageSurface(width, height, image.Point{}, bg)
}

func newImageSurface(width, height int, origin image.Point, bg color.Color) *ImageSurface {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(bg))
	dc.SetLineCap(gg.LineCapRound)
	return &ImageSurface{dc: dc, origin: origin}
}

// DrawLine strokes one connector. Coordinates are offset to pixel centers.
func (s *ImageSurface) DrawLine(from, to Point, c color.Color, width int) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(float64(width))
	s.dc.DrawLine(
		float64(from.X-s.origin.X)+0.5, float64(from.Y-s.origin.Y)+0.5,
		float64(to.X-s.origin.X)+0.5, float64(to.Y-s.origin.Y)+0.5,
	)
	if err := s.dc.Stroke(); err != nil {
		Logger().Debug("stroke failed", "from", from.String(), "to", to.String(), "err", err)
	}
}

// Image returns a copy of the pixels drawn so far.
func (s *ImageSurface) Image() *image.RGBA {
	img := s.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			rgba.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return rgba
}

// Close releases the underlying context.
func (s *ImageSurface) Close() error {
	return s.dc.Close()
}
