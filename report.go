package pointset

import (
	"fmt"
	"io"
)

// Report is the outcome of one pass over an input. Total counts every line,
// including the blank terminator and anything after it.
type Report struct {
	Unique int
	Total  int
	Parsed int
}

func Process(lines LineBuffer) (Report, *PointSet, error) {
	ps, parsed, err := BuildPointSet(lines)
	if err != nil {
		return Report{}, nil, err
	}

	return Report{
		Unique: ps.Len(),
		Total:  len(lines),
		Parsed: parsed,
	}, ps, nil
}

func ProcessFile(fileName string) (Report, *PointSet, error) {
	lines, err := LoadLinesFromFile(fileName)
	if err != nil {
		return Report{}, nil, err
	}

	r, ps, err := Process(lines)
	if err != nil {
		return Report{}, nil, fmt.Errorf("error parsing points file %s: %w", fileName, err)
	}

	return r, ps, nil
}

// WriteTo writes the unique count and the total line count, one per line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%d\n%d\n", r.Unique, r.Total)
	return int64(n), err
}
