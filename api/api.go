// Package api implements the hostd bridge routes: process execution,
// executable resolution, filesystem operations, file tags, and text
// extraction.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hostkit-io/hostkit/auth"
	"github.com/hostkit-io/hostkit/fileops"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/observability"
	"github.com/hostkit-io/hostkit/server/middleware"
)

// Handlers bundles the services behind the bridge routes.
type Handlers struct {
	Files *fileops.Manager
	Auth  *auth.Service
	// Region is the default phone-number region for text extraction.
	Region string
	// Metrics is optional; nil disables instrument recording.
	Metrics *observability.Metrics
	Log     *logger.Logger
}

// Register mounts all bridge routes on engine under /v1. When auth is
// enabled, everything under /v1 except the token exchange requires a
// bearer token.
func (h *Handlers) Register(engine *gin.Engine, authCfg auth.Config) {
	if h.Log == nil {
		h.Log = logger.Nop()
	}

	v1 := engine.Group("/v1")
	if authCfg.Enabled && h.Auth != nil {
		v1.Use(middleware.Auth(middleware.AuthConfig{
			TokenValidator: h.Auth.ValidatorFunc(),
			SkipPaths:      []string{"/v1/auth/token"},
		}))
	}

	v1.POST("/auth/token", h.ExchangeToken)

	v1.POST("/run", h.Run)
	v1.GET("/resolve/:name", h.ResolveExecutable)

	fs := v1.Group("/fs")
	fs.POST("/copy", h.CopyPath)
	fs.POST("/move", h.MovePath)
	fs.POST("/rename", h.RenamePath)
	fs.POST("/trash", h.TrashPath)
	fs.POST("/mkdir", h.MakeDir)
	fs.POST("/symlink", h.MakeSymlink)
	fs.POST("/hardlink", h.MakeHardlink)
	fs.DELETE("/remove", h.RemovePath)
	fs.GET("/list", h.ListDir)
	fs.GET("/exists", h.PathExists)

	tags := v1.Group("/tags")
	tags.GET("", h.GetTags)
	tags.PUT("", h.SetTags)

	text := v1.Group("/text")
	text.POST("/words", h.ExtractWords)
	text.POST("/sentences", h.ExtractSentences)
	text.POST("/links", h.ExtractLinks)
	text.POST("/phones", h.ExtractPhones)
	text.POST("/dates", h.ExtractDates)
	text.POST("/addresses", h.ExtractAddresses)
}
