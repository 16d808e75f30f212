package fileops

import (
	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/pathutil"
)

// Symlink creates a symbolic link at linkPath pointing to target. The
// target does not have to exist; that matches OS alias semantics for
// dangling links.
func (m *Manager) Symlink(target, linkPath string) error {
	target = pathutil.Expand(target)
	linkPath = pathutil.Expand(linkPath)

	if err := m.fs.Symlink(target, linkPath); err != nil {
		return errors.Filesystem("symlink", linkPath, err)
	}
	m.log.Debug("symlink created", logger.Fields(logger.FieldPath, linkPath, "target", target))
	return nil
}

// Hardlink creates a hard link at linkPath for the existing file target.
func (m *Manager) Hardlink(target, linkPath string) error {
	target = pathutil.Expand(target)
	linkPath = pathutil.Expand(linkPath)

	if !m.Exists(target) {
		return errors.NotFound("path", target)
	}
	if err := m.fs.Link(target, linkPath); err != nil {
		return errors.Filesystem("hardlink", linkPath, err)
	}
	m.log.Debug("hardlink created", logger.Fields(logger.FieldPath, linkPath, "target", target))
	return nil
}
