// Package snapshot persists grid cell matrices as named binary artifacts.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lifegrid/pkg/life"
)

// ErrPersistence reports a failed save or load.
var ErrPersistence = errors.New("snapshot: persistence failure")

// FileExtension is the extension for snapshot artifacts.
const FileExtension = ".cells"

// Artifact layout: magic, format version, rows, cols (little-endian), then
// rows*cols cell bytes in row-major order.
var magic = [4]byte{'L', 'I', 'F', 'S'}

const (
	formatVersion uint16 = 1
	headerSize           = 14
)

// Grid is the narrow read surface a snapshot captures. *life.Engine satisfies
// it; the store never retains the grid after a call returns.
type Grid interface {
	Rows() int
	Cols() int
	Cells() []uint8
}

// Store reads and writes snapshots under a base directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on first
// save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the artifact path for a snapshot name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+FileExtension)
}

// Save writes g's full cell matrix under the given name. The artifact records
// the grid shape ahead of the cells so Load can rebuild a matrix of the same
// dimensions. The write goes through a temp file and rename so a failure
// cannot leave a torn artifact behind.
func (s *Store) Save(name string, g Grid) error {
	rows, cols := g.Rows(), g.Cols()
	cells := g.Cells()
	if rows <= 0 || cols <= 0 || len(cells) != rows*cols {
		return fmt.Errorf("%w: grid shape %dx%d does not match %d cells", ErrPersistence, rows, cols, len(cells))
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating store directory: %v", ErrPersistence, err)
	}

	buf := make([]byte, headerSize, headerSize+len(cells))
	copy(buf, magic[:])
	binary.LittleEndian.PutUint16(buf[4:], formatVersion)
	binary.LittleEndian.PutUint32(buf[6:], uint32(rows))
	binary.LittleEndian.PutUint32(buf[10:], uint32(cols))
	for _, v := range cells {
		b := byte(0)
		if v != 0 {
			b = 1
		}
		buf = append(buf, b)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp artifact: %v", ErrPersistence, err)
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: closing %s: %v", ErrPersistence, name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: publishing %s: %v", ErrPersistence, name, err)
	}
	return nil
}

// Load reads a previously saved artifact back into a cell matrix along with
// the shape it was saved with.
func (s *Store) Load(name string) (rows, cols int, cells []uint8, err error) {
	path := s.Path(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: reading %s: %v", ErrPersistence, path, err)
	}
	if len(raw) < headerSize || !bytes.Equal(raw[:4], magic[:]) {
		return 0, 0, nil, fmt.Errorf("%w: %s is not a snapshot artifact", ErrPersistence, path)
	}
	if v := binary.LittleEndian.Uint16(raw[4:]); v != formatVersion {
		return 0, 0, nil, fmt.Errorf("%w: unsupported snapshot version %d in %s", ErrPersistence, v, path)
	}
	rows = int(binary.LittleEndian.Uint32(raw[6:]))
	cols = int(binary.LittleEndian.Uint32(raw[10:]))
	body := raw[headerSize:]
	if rows <= 0 || cols <= 0 || len(body) != rows*cols {
		return 0, 0, nil, fmt.Errorf("%w: %s declares %dx%d cells but carries %d", ErrPersistence, path, rows, cols, len(body))
	}
	return rows, cols, append([]uint8(nil), body...), nil
}

// Restore loads a snapshot and builds a fresh engine around it under the
// given rule.
func (s *Store) Restore(name string, rule life.Rule) (*life.Engine, error) {
	rows, cols, cells, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	return life.NewFromCells(rows, cols, rule, cells)
}
