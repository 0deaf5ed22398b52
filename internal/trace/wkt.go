package trace

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"blackboard/internal/board"
)

// ParseWKT turns WKT geometries into pointer samples, one geometry per line.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// MULTILINESTRING((x y, ...), ...). Every linestring, and every lone point,
// becomes one stroke; strokes are separated by pen-ups. Blank lines and
// # comments are skipped.
func ParseWKT(src string) ([]board.Point, error) {
	var out []board.Point
	sc := bufio.NewScanner(strings.NewReader(src))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pts, err := parseGeometry(line)
		if err != nil {
			return nil, fmt.Errorf("wkt line %d: %w", n, err)
		}
		out = appendStroke(out, pts)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return out, nil
}

func parseGeometry(s string) ([]board.Point, error) {
	up := strings.ToUpper(s)
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("invalid geometry")
	}
	body := s[i+1 : j]
	var out []board.Point
	switch {
	case strings.HasPrefix(up, "MULTILINESTRING"):
		for _, part := range splitParts(body) {
			out = appendStroke(out, parseTuples(part))
		}
	case strings.HasPrefix(up, "LINESTRING"):
		out = appendStroke(out, parseTuples(body))
	case strings.HasPrefix(up, "MULTIPOINT"):
		for _, p := range parseTuples(body) {
			out = appendStroke(out, []board.Point{p})
		}
	case strings.HasPrefix(up, "POINT"):
		out = appendStroke(out, parseTuples(body))
	default:
		return nil, errors.New("unsupported wkt type")
	}
	if len(out) == 0 {
		return nil, errors.New("no coordinates parsed")
	}
	return out, nil
}

// splitParts returns the contents of each top-level (...) group in s.
func splitParts(s string) []string {
	var parts []string
	depth, start := 0, -1
	for i, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
		}
	}
	return parts
}

// parseTuples reads "x y, x y" into samples, skipping malformed tuples.
func parseTuples(block string) []board.Point {
	var out []board.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
		if len(parts) < 2 {
			continue
		}
		if p, ok := parsePoint(parts[0], parts[1]); ok {
			out = append(out, p)
		}
	}
	return out
}

// appendStroke adds a stroke, separated from the previous one by a pen-up.
// The last stroke stays open so it remains the board's last trace.
func appendStroke(out, stroke []board.Point) []board.Point {
	if len(stroke) == 0 {
		return out
	}
	if len(out) > 0 {
		out = append(out, board.PenUp)
	}
	return append(out, stroke...)
}
