package fileops

import (
	"io"
	"io/fs"
	"os"

	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/pathutil"
)

// Copy duplicates src at dst. Directories are copied recursively;
// symbolic links inside a copied tree are recreated, not followed.
func (m *Manager) Copy(src, dst string) error {
	src = pathutil.Expand(src)
	dst = pathutil.Expand(dst)

	info, err := m.fs.Lstat(src)
	if err != nil {
		return errors.NotFound("path", src)
	}

	if err := m.copyAny(src, dst); err != nil {
		return err
	}
	m.log.Debug("copied", logger.Fields(
		logger.FieldPath, src,
		"target", dst,
		"dir", info.IsDir(),
	))
	return nil
}

func (m *Manager) copyAny(src, dst string) error {
	info, err := m.fs.Lstat(src)
	if err != nil {
		return errors.Filesystem("copy", src, err)
	}

	switch {
	case info.IsDir():
		return m.copyDir(src, dst)
	case info.Mode()&os.ModeSymlink != 0:
		return m.copySymlink(src, dst)
	default:
		return m.copyFile(src, dst, info.Mode().Perm())
	}
}

func (m *Manager) copyDir(src, dst string) error {
	if err := m.fs.MkdirAll(dst, 0o755); err != nil {
		return errors.Filesystem("copy", dst, err)
	}
	entries, err := m.fs.ReadDir(src)
	if err != nil {
		return errors.Filesystem("copy", src, err)
	}
	for _, entry := range entries {
		if err := m.copyAny(m.fs.Join(src, entry.Name()), m.fs.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) copyFile(src, dst string, perm fs.FileMode) error {
	in, err := m.fs.Open(src)
	if err != nil {
		return errors.Filesystem("copy", src, err)
	}
	defer in.Close()

	out, err := m.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Filesystem("copy", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Filesystem("copy", dst, err)
	}
	return nil
}

func (m *Manager) copySymlink(src, dst string) error {
	target, err := m.fs.Readlink(src)
	if err != nil {
		return errors.Filesystem("copy", src, err)
	}
	if err := m.fs.Symlink(target, dst); err != nil {
		return errors.Filesystem("copy", dst, err)
	}
	return nil
}
