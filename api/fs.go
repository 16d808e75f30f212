package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/validation"
)

// PathPairRequest names a source and destination for two-path operations.
type PathPairRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

// PathRequest names a single filesystem path.
type PathRequest struct {
	Path string `json:"path" validate:"required"`
}

// RenameRequest renames a file in place; NewName must be a bare name, not
// a path.
type RenameRequest struct {
	Path    string `json:"path" validate:"required"`
	NewName string `json:"new_name" validate:"required"`
}

func (h *Handlers) recordFileOp(c *gin.Context, op string) {
	if h.Metrics != nil {
		h.Metrics.RecordFileOp(c.Request.Context(), op)
	}
}

func (h *Handlers) bindPair(c *gin.Context) (*PathPairRequest, bool) {
	var req PathPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return nil, false
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return nil, false
	}
	return &req, true
}

func (h *Handlers) bindPath(c *gin.Context) (*PathRequest, bool) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return nil, false
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return nil, false
	}
	return &req, true
}

// CopyPath copies a file or directory tree.
func (h *Handlers) CopyPath(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.Files.Copy(req.Source, req.Destination); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "copy")
	server.RespondOK(c, gin.H{"source": req.Source, "destination": req.Destination})
}

// MovePath moves a file or directory, falling back to copy+remove across
// filesystems.
func (h *Handlers) MovePath(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.Files.Move(req.Source, req.Destination); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "move")
	server.RespondOK(c, gin.H{"source": req.Source, "destination": req.Destination})
}

// RenamePath renames an entry within its directory.
func (h *Handlers) RenamePath(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	newPath, err := h.Files.Rename(req.Path, req.NewName)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "rename")
	server.RespondOK(c, gin.H{"path": newPath})
}

// TrashPath moves a path into the trash directory instead of deleting it.
func (h *Handlers) TrashPath(c *gin.Context) {
	req, ok := h.bindPath(c)
	if !ok {
		return
	}
	trashed, err := h.Files.Trash(req.Path)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "trash")
	server.RespondOK(c, gin.H{"path": req.Path, "trashed_to": trashed})
}

// MakeDir creates a directory, including missing parents.
func (h *Handlers) MakeDir(c *gin.Context) {
	req, ok := h.bindPath(c)
	if !ok {
		return
	}
	if err := h.Files.MkDir(req.Path); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "mkdir")
	server.RespondCreated(c, gin.H{"path": req.Path})
}

// MakeSymlink creates a symbolic link at destination pointing to source.
func (h *Handlers) MakeSymlink(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.Files.Symlink(req.Source, req.Destination); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "symlink")
	server.RespondCreated(c, gin.H{"source": req.Source, "destination": req.Destination})
}

// MakeHardlink creates a hard link at destination to source.
func (h *Handlers) MakeHardlink(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.Files.Hardlink(req.Source, req.Destination); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "hardlink")
	server.RespondCreated(c, gin.H{"source": req.Source, "destination": req.Destination})
}

// RemovePath permanently deletes a file or directory tree.
func (h *Handlers) RemovePath(c *gin.Context) {
	req, ok := h.bindPath(c)
	if !ok {
		return
	}
	if err := h.Files.Remove(req.Path); err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.recordFileOp(c, "remove")
	server.RespondNoContent(c)
}

// ListDir lists a directory. Hidden entries are excluded unless ?hidden=true.
func (h *Handlers) ListDir(c *gin.Context) {
	dir := c.Query("path")
	if dir == "" {
		server.RespondWithError(c, apperrors.MissingField("path"))
		return
	}
	includeHidden, _ := strconv.ParseBool(c.Query("hidden"))

	entries, err := h.Files.List(dir, includeHidden)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, entries)
}

// PathExists reports whether a path exists.
func (h *Handlers) PathExists(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		server.RespondWithError(c, apperrors.MissingField("path"))
		return
	}
	server.RespondOK(c, gin.H{"path": path, "exists": h.Files.Exists(path)})
}
