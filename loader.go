package pointset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DefaultPointsFile is the input both binaries read.
const DefaultPointsFile = "points.txt"

const maxLineSize = 64 << 20

var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// LineBuffer is every physical line of an input, terminators stripped. A
// blank line is the empty string.
type LineBuffer []string

func LoadLinesFromFile(fileName string) (LineBuffer, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open points file %s: %w", fileName, err)
	}
	defer file.Close()

	lines, err := LoadLinesFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("error reading points file %s: %w", fileName, err)
	}

	return lines, nil
}

// LoadLinesFromReader reads reader to the end. A line ends at "\n", "\r\n"
// or a lone "\r", and a final line without a terminator still counts. The
// whole input must be valid UTF-8, including lines after a blank one.
func LoadLinesFromReader(reader io.Reader) (LineBuffer, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanUniversalLines)

	lines := LineBuffer{}
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", len(lines)+1, ErrInvalidUTF8)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// scanUniversalLines is a bufio.SplitFunc that accepts LF, CRLF and CR
// terminators. A CR at the end of the buffer waits for more data so a CRLF
// pair split across reads still ends a single line.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
