package pointset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrTokenCount = errors.New("expected 3 space separated coordinates")

// ParseError reports the first line that could not be turned into a point.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePoint reads "x y z". Tokens are split on single spaces, so a doubled
// space yields an empty token and fails. Literals too large for a float64
// become ±Inf rather than an error.
func ParsePoint(line string) (Point3d, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return Point3d{}, fmt.Errorf("%w, got %d", ErrTokenCount, len(parts))
	}

	var coords [3]float64
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Point3d{}, err
		}
		coords[i] = val
	}

	return Point3d{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// BuildPointSet parses lines in order until the first blank line. It returns
// the set and how many lines were parsed into points.
func BuildPointSet(lines LineBuffer) (*PointSet, int, error) {
	ps := NewPointSet()

	parsed := 0
	for i, line := range lines {
		if line == "" {
			break
		}

		p, err := ParsePoint(line)
		if err != nil {
			return nil, parsed, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		ps.Add(p)
		parsed++
	}

	return ps, parsed, nil
}
