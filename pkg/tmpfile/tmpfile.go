// Package tmpfile hands out collision-free scratch files under a single
// directory shared by all concurrent requests.
package tmpfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Manager creates and removes scratch files under one directory.
type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

func (m *Manager) Dir() string {
	return m.dir
}

// EnsureDir creates the scratch directory if needed. It reports whether the
// directory was created and never fails when it already exists.
func (m *Manager) EnsureDir() (created bool, err error) {
	if _, err := os.Stat(m.dir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return false, err
	}
	return true, nil
}

// NewPath returns a fresh absolute path inside the scratch directory.
// The random component keeps concurrent requests from colliding.
func (m *Manager) NewPath(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(m.dir, "scan-"+uuid.NewString()+ext)
}

// Write stores data at path, readable by this process only.
func (m *Manager) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

// Remove deletes path. A file that is already gone is not an error, so
// callers can defer Remove unconditionally.
func (m *Manager) Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
