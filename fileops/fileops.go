// Package fileops provides the filesystem glue of the hostkit libraries:
// copy, move, rename, trash, links, listing, and directory creation. It is
// thin plumbing over OS filesystem services, written against the avfs
// virtual-filesystem interface so every operation is testable in memory.
//
// fileops never invokes the process subsystem and owns no state beyond
// the configured trash location.
package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/avfs/avfs"

	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/pathutil"
)

// Manager performs filesystem operations on a single VFS.
type Manager struct {
	fs       avfs.VFS
	log      *logger.Logger
	trashDir string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the diagnostic logger. Defaults to a nop logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) { m.log = log.WithComponent("fileops") }
}

// WithTrashDir overrides the trash directory used by Trash.
func WithTrashDir(dir string) Option {
	return func(m *Manager) { m.trashDir = dir }
}

// New creates a Manager over the given VFS.
func New(fs avfs.VFS, opts ...Option) *Manager {
	m := &Manager{
		fs:  fs,
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.trashDir == "" {
		m.trashDir = defaultTrashDir()
	}
	return m
}

// defaultTrashDir follows the XDG trash layout with a home-directory
// fallback.
func defaultTrashDir() string {
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		return filepath.Join(data, "Trash", "files")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Trash", "files")
	}
	return filepath.Join(home, ".local", "share", "Trash", "files")
}

// Exists reports whether path refers to an existing file or directory.
func (m *Manager) Exists(path string) bool {
	_, err := m.fs.Stat(pathutil.Expand(path))
	return err == nil
}

// MkDir creates a directory and any missing parents.
func (m *Manager) MkDir(path string) error {
	path = pathutil.Expand(path)
	if err := m.fs.MkdirAll(path, 0o755); err != nil {
		return errors.Filesystem("mkdir", path, err)
	}
	m.log.Debug("directory created", logger.Fields(logger.FieldPath, path))
	return nil
}

// Remove deletes path, recursively for directories.
func (m *Manager) Remove(path string) error {
	path = pathutil.Expand(path)
	if !m.Exists(path) {
		return errors.NotFound("path", path)
	}
	if err := m.fs.RemoveAll(path); err != nil {
		return errors.Filesystem("remove", path, err)
	}
	m.log.Debug("removed", logger.Fields(logger.FieldPath, path))
	return nil
}

// WriteFile writes data to path, creating or truncating it.
func (m *Manager) WriteFile(path string, data []byte) error {
	path = pathutil.Expand(path)
	if err := m.fs.WriteFile(path, data, 0o644); err != nil {
		return errors.Filesystem("write", path, err)
	}
	return nil
}

// ReadFile returns the contents of path.
func (m *Manager) ReadFile(path string) ([]byte, error) {
	path = pathutil.Expand(path)
	b, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Filesystem("read", path, err)
	}
	return b, nil
}

// Rename changes the basename of path in place and returns the new path.
// newName must be a bare name, not a path.
func (m *Manager) Rename(path, newName string) (string, error) {
	path = pathutil.Expand(path)
	if newName == "" {
		return "", errors.MissingField("new_name")
	}
	if strings.ContainsRune(newName, '/') {
		return "", errors.InvalidInput("new_name", "must not contain path separators")
	}
	if !m.Exists(path) {
		return "", errors.NotFound("path", path)
	}

	dst := m.fs.Join(m.fs.Dir(path), newName)
	if m.Exists(dst) {
		return "", errors.AlreadyExists("path").WithDetail("path", dst)
	}
	if err := m.fs.Rename(path, dst); err != nil {
		return "", errors.Filesystem("rename", path, err)
	}
	m.log.Debug("renamed", logger.Fields(logger.FieldPath, path, "target", dst))
	return dst, nil
}

// Move relocates src to dst. A plain rename is attempted first; when the
// OS refuses (typically a cross-device move) it falls back to copy and
// remove.
func (m *Manager) Move(src, dst string) error {
	src = pathutil.Expand(src)
	dst = pathutil.Expand(dst)
	if !m.Exists(src) {
		return errors.NotFound("path", src)
	}

	if err := m.fs.Rename(src, dst); err == nil {
		m.log.Debug("moved", logger.Fields(logger.FieldPath, src, "target", dst))
		return nil
	}

	if err := m.Copy(src, dst); err != nil {
		return err
	}
	if err := m.fs.RemoveAll(src); err != nil {
		return errors.Filesystem("move", src, err)
	}
	m.log.Debug("moved", logger.Fields(logger.FieldPath, src, "target", dst))
	return nil
}
