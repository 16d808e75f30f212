package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/tags"
	"github.com/hostkit-io/hostkit/validation"
)

// SetTagsRequest replaces the full tag set of a file. An empty list clears
// all tags.
type SetTagsRequest struct {
	Path string   `json:"path" validate:"required"`
	Tags []string `json:"tags"`
}

// GetTags reads the tags of ?path=.
func (h *Handlers) GetTags(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		server.RespondWithError(c, apperrors.MissingField("path"))
		return
	}

	list, err := tags.Get(path)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"path": path, "tags": list})
}

// SetTags replaces the tag set of a file.
func (h *Handlers) SetTags(c *gin.Context) {
	var req SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	if err := tags.Set(req.Path, req.Tags); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"path": req.Path, "tags": req.Tags})
}
