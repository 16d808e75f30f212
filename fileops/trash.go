package fileops

import (
	"github.com/google/uuid"

	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/pathutil"
)

// Trash moves path into the trash directory and returns the path it now
// lives at. Name collisions inside the trash are resolved with a uuid
// suffix, never by overwriting. There is no restore index; recovering a
// trashed file is a manual affair.
func (m *Manager) Trash(path string) (string, error) {
	path = pathutil.Expand(path)
	if !m.Exists(path) {
		return "", errors.NotFound("path", path)
	}

	if err := m.fs.MkdirAll(m.trashDir, 0o700); err != nil {
		return "", errors.Filesystem("trash", m.trashDir, err)
	}

	target := m.fs.Join(m.trashDir, m.fs.Base(path))
	if m.Exists(target) {
		target = target + "." + uuid.NewString()
	}

	if err := m.Move(path, target); err != nil {
		return "", err
	}
	m.log.Debug("trashed", logger.Fields(logger.FieldPath, path, "target", target))
	return target, nil
}
