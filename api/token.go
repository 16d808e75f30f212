package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/util"
	"github.com/hostkit-io/hostkit/validation"
)

// TokenRequest exchanges a configured API key for a session token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// ExchangeToken verifies the API key and issues a short-lived bearer token.
func (h *Handlers) ExchangeToken(c *gin.Context) {
	if h.Auth == nil {
		server.RespondWithError(c, apperrors.Unauthorized("authentication is not enabled"))
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	token, err := h.Auth.Exchange(req.APIKey)
	if err != nil {
		h.Log.Warn("API key rejected", map[string]interface{}{
			"api_key": util.MaskSecret(req.APIKey, 4),
			"ip":      c.ClientIP(),
		})
		server.RespondWithError(c, apperrors.Unauthorized("invalid API key"))
		return
	}
	server.RespondOK(c, gin.H{"token": token})
}
