package trace

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"blackboard/internal/board"
)

// ReadCSV reads pointer samples from a CSV with a header row.
// Column detection: x|px|col and y|py|row (case-insensitive). A row with an
// empty coordinate, or "up" in either column, is a pen-up. Rows whose
// coordinates do not parse are skipped.
func ReadCSV(r io.Reader) ([]board.Point, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "px", "col":
			if idxX == -1 {
				idxX = i
			}
		case "y", "py", "row":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	var out []board.Point
	for _, row := range recs[1:] {
		xs, ys := cellAt(row, idxX), cellAt(row, idxY)
		if xs == "" || ys == "" || strings.EqualFold(xs, "up") || strings.EqualFold(ys, "up") {
			out = append(out, board.PenUp)
			continue
		}
		if p, ok := parsePoint(xs, ys); ok {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no samples parsed")
	}
	return out, nil
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parsePoint parses one x/y pair. Unparseable or unrepresentable values
// report false so callers can skip the sample.
func parsePoint(xs, ys string) (board.Point, bool) {
	xf, err1 := strconv.ParseFloat(xs, 64)
	yf, err2 := strconv.ParseFloat(ys, 64)
	if err1 != nil || err2 != nil {
		return board.Point{}, false
	}
	x, okx := coord(xf)
	y, oky := coord(yf)
	if !okx || !oky {
		return board.Point{}, false
	}
	return board.Pt(x, y), true
}
