// Package pattern parses line-oriented text descriptions of cell patterns.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lifegrid/pkg/life"
)

// ErrFormat rejects pattern sources that are empty or cannot be read.
var ErrFormat = errors.New("pattern: bad format")

// DefaultAliveMarker is the character that historically denotes a live cell.
const DefaultAliveMarker byte = 'O'

type decoder struct {
	alive byte
}

// Option adjusts decoding behaviour.
type Option func(*decoder)

// WithAliveMarker overrides the character treated as a live cell.
func WithAliveMarker(marker byte) Option {
	return func(d *decoder) { d.alive = marker }
}

// Decode reads a pattern from r. Each input line is one pattern row; the alive
// marker denotes a live cell and every other character a dead one. The matrix
// is lines × longest-line, with shorter lines padded dead on the right.
func Decode(r io.Reader, opts ...Option) (life.Pattern, error) {
	d := decoder{alive: DefaultAliveMarker}
	for _, opt := range opts {
		opt(&d)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return life.Pattern{}, fmt.Errorf("%w: reading source: %v", ErrFormat, err)
	}
	if len(lines) == 0 {
		return life.Pattern{}, fmt.Errorf("%w: empty source", ErrFormat)
	}

	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 {
		return life.Pattern{}, fmt.Errorf("%w: source has no columns", ErrFormat)
	}

	p := life.Pattern{
		Rows:  len(lines),
		Cols:  cols,
		Cells: make([]uint8, len(lines)*cols),
	}
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			if line[col] == d.alive {
				p.Cells[row*cols+col] = 1
			}
		}
	}
	return p, nil
}

// DecodeString parses a pattern held in s.
func DecodeString(s string, opts ...Option) (life.Pattern, error) {
	return Decode(strings.NewReader(s), opts...)
}

// DecodeFile reads and parses the pattern file at path.
func DecodeFile(path string, opts ...Option) (life.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("%w: opening %s: %v", ErrFormat, path, err)
	}
	defer f.Close()
	return Decode(f, opts...)
}
