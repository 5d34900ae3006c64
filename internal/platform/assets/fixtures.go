package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FixtureStore reads pre-computed lesson JSON from the data directory.
type FixtureStore struct {
	dir string
}

// NewFixtureStore returns a store reading from dir.
func NewFixtureStore(dir string) *FixtureStore {
	return &FixtureStore{dir: dir}
}

// Dir returns the fixture directory.
func (s *FixtureStore) Dir() string { return s.dir }

// Load returns the raw bytes of the named fixture. name must be a plain
// file name.
func (s *FixtureStore) Load(name string) ([]byte, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
		}
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	return data, nil
}
