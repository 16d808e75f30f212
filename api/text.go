package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/textscan"
	"github.com/hostkit-io/hostkit/validation"
)

// TextRequest carries the text to scan. Region overrides the configured
// default phone-number region for this request.
type TextRequest struct {
	Text   string `json:"text" validate:"required"`
	Region string `json:"region"`
}

func (h *Handlers) bindText(c *gin.Context) (*TextRequest, bool) {
	var req TextRequest
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

// ExtractWords splits text into words.
func (h *Handlers) ExtractWords(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	server.RespondOK(c, textscan.Words(req.Text))
}

// ExtractSentences splits text into sentences.
func (h *Handlers) ExtractSentences(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	server.RespondOK(c, textscan.Sentences(req.Text))
}

// ExtractLinks finds URLs in text.
func (h *Handlers) ExtractLinks(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	server.RespondOK(c, textscan.Links(req.Text))
}

// ExtractPhones finds valid phone numbers in text.
func (h *Handlers) ExtractPhones(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	region := req.Region
	if region == "" {
		region = h.Region
	}
	server.RespondOK(c, textscan.Phones(req.Text, region))
}

// ExtractDates finds dates and timestamps in text.
func (h *Handlers) ExtractDates(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	server.RespondOK(c, textscan.Dates(req.Text))
}

// ExtractAddresses finds street addresses in text.
func (h *Handlers) ExtractAddresses(c *gin.Context) {
	req, ok := h.bindText(c)
	if !ok {
		return
	}
	server.RespondOK(c, textscan.Addresses(req.Text))
}
