package board

import (
	"fmt"
	"image/color"
	"strings"
)

// bridgeThreshold is the squared distance under which the real neighbors of
// a sentinel count as one continuous line.
const bridgeThreshold = 5 * 5

// Surface receives the connectors produced by RenderAll.
type Surface interface {
	DrawLine(from, to Point, c color.Color, width int)
}

// BridgeMode selects what live render does with a sentinel whose two real
// neighbors nearly touch.
type BridgeMode int

const (
	// BridgeSuppress keeps the connector unbroken across the gap.
	BridgeSuppress BridgeMode = iota
	// BridgeLegacy always breaks at a sentinel.
	BridgeLegacy
)

func (m BridgeMode) String() string {
	switch m {
	case BridgeSuppress:
		return "suppress"
	case BridgeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("BridgeMode(%d)", int(m))
	}
}

// ParseBridgeMode parses "suppress" or "legacy".
func ParseBridgeMode(s string) (BridgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suppress", "":
		return BridgeSuppress, nil
	case "legacy":
		return BridgeLegacy, nil
	default:
		return 0, fmt.Errorf("unknown bridge mode %q", s)
	}
}

// RenderAll draws every connector of the history onto s in the active color.
func (b *Board) RenderAll(s Surface) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled {
		return ErrDisabled
	}
	c, w := b.color, b.opts.strokeWidth
	walk(b.hist.pts, b.opts.bridge == BridgeSuppress, func(from, to Point) {
		s.DrawLine(from, to, c, w)
	})
	return nil
}

// walk calls seg for each pair of consecutive visible points. A sentinel
// breaks the run unless bridge is set and its neighbors nearly touch.
func walk(pts []Point, bridge bool, seg func(from, to Point)) int {
	var last Point
	have := false
	n := 0
	for i, p := range pts {
		if p.up {
			if !have {
				continue
			}
			if bridge && bridged(pts, i) {
				continue
			}
			have = false
			continue
		}
		if have {
			seg(last, p)
			n++
		}
		last, have = p, true
	}
	return n
}

func bridged(pts []Point, i int) bool {
	if i == 0 || i+1 >= len(pts) {
		return false
	}
	prev, next := pts[i-1], pts[i+1]
	if prev.up || next.up {
		return false
	}
	return SquaredDistance(prev, next) < bridgeThreshold
}
