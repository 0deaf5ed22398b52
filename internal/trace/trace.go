// Package trace reads pointer-sample scripts and replays them into a board.
package trace

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"blackboard/internal/board"
)

// Extensions lists the script formats Load understands.
var Extensions = []string{".csv", ".wkt"}

// Supported reports whether path has a script extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// maxCoord bounds script coordinates well inside any canvas arithmetic.
const maxCoord = math.MaxInt32

// coord rounds a parsed coordinate to a pixel. NaN, infinities and values
// beyond maxCoord are rejected.
func coord(f float64) (int, bool) {
	if math.IsNaN(f) || math.Abs(f) > maxCoord {
		return 0, false
	}
	return int(math.Round(f)), true
}

// Load reads a script file, choosing the parser from its extension.
func Load(path string) ([]board.Point, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		pts, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return pts, nil
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		pts, err := ParseWKT(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return pts, nil
	default:
		return nil, fmt.Errorf("unsupported script: %q", ext)
	}
}

// Feed replays samples into b in order, starting a new stroke so the script
// never joins what is already drawn. It stops at the first error, which is
// board.ErrDisabled when the board is gated, and reports how many samples
// were accepted.
func Feed(b *board.Board, samples []board.Point) (int, error) {
	if err := b.BeginStroke(); err != nil {
		return 0, err
	}
	for i, p := range samples {
		var err error
		if p.IsPenUp() {
			err = b.AppendPenUp()
		} else {
			err = b.AppendSample(p)
		}
		if err != nil {
			return i, err
		}
	}
	return len(samples), nil
}
