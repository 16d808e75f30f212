package fileops

import (
	"strings"
	"time"

	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/pathutil"
)

// Entry describes one directory member.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	IsDir   bool      `json:"is_dir"`
	ModTime time.Time `json:"mod_time"`
}

// List returns the entries of dir in directory order. Dotfiles are
// skipped unless includeHidden is set.
func (m *Manager) List(dir string, includeHidden bool) ([]Entry, error) {
	dir = pathutil.Expand(dir)

	dirEntries, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Filesystem("list", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !includeHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, errors.Filesystem("list", m.fs.Join(dir, de.Name()), err)
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    m.fs.Join(dir, de.Name()),
			Size:    info.Size(),
			IsDir:   de.IsDir(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}
