package safety

import (
	"errors"
	"io/fs"
	"os"
)

// PathInfo holds the filesystem facts the classifier needs about a path.
type PathInfo struct {
	Exists bool
	IsDir  bool
}

// Probe reports existence and type facts for a path. It is the only
// filesystem dependency of the classifier and is injected so rule logic
// can be tested deterministically.
type Probe interface {
	Stat(path string) (PathInfo, error)
}

// OSProbe returns a probe backed by the real filesystem.
func OSProbe() Probe {
	return osProbe{}
}

type osProbe struct{}

func (osProbe) Stat(path string) (PathInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PathInfo{}, nil
		}
		// Permission errors and other faults propagate; the classifier
		// folds them into a fail-safe "does not exist" verdict.
		return PathInfo{}, err
	}
	return PathInfo{Exists: true, IsDir: info.IsDir()}, nil
}

// MapProbe is a deterministic in-memory probe keyed by path. Paths absent
// from the map do not exist; a true value marks a directory.
type MapProbe map[string]bool

func (m MapProbe) Stat(path string) (PathInfo, error) {
	isDir, ok := m[path]
	if !ok {
		return PathInfo{}, nil
	}
	return PathInfo{Exists: true, IsDir: isDir}, nil
}
