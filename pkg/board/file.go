package board

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFrom reads the board file at path into a new board at home.
// A missing file is reported with an error satisfying
// errors.Is(err, fs.ErrNotExist); a malformed file with a *ParseError.
func LoadFrom(path string, opts ...Option) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	b, err := Decode(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return b, nil
}

// SaveTo writes the board to path using the temp-file, fsync, rename
// pattern so a failed save leaves any previous file intact.
func (b *Board) SaveTo(path string) error {
	return WriteFileAtomic(path, func(f *os.File) error {
		return Encode(f, b)
	})
}

// WriteFileAtomic creates a temp file next to path, lets write fill it,
// syncs it, and renames it over path. The temp file is removed on failure.
func WriteFileAtomic(path string, write func(f *os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
