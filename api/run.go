package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/observability"
	"github.com/hostkit-io/hostkit/process"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/validation"
)

// RunRequest describes a synchronous subprocess invocation.
type RunRequest struct {
	Path  string            `json:"path" validate:"required"`
	Args  []string          `json:"args"`
	Dir   string            `json:"dir"`
	Env   map[string]string `json:"env"`
	Input *string           `json:"input"`
}

// RunResponse carries the completed process outcome. A non-zero exit code
// is data, not an error: the HTTP status is 200 either way.
type RunResponse struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Run executes a subprocess and waits for it to finish.
func (h *Handlers) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanProcessRun)
	defer span.End()
	if h.Metrics != nil {
		h.Metrics.RecordRunStart(ctx)
	}

	start := time.Now()
	result, err := process.Run(process.Command{
		Path:  req.Path,
		Args:  req.Args,
		Dir:   req.Dir,
		Env:   req.Env,
		Input: req.Input,
	})
	if h.Metrics != nil {
		exitCode := -1
		if result != nil {
			exitCode = result.ExitCode
		}
		h.Metrics.RecordRunEnd(ctx, req.Path, exitCode, time.Since(start))
	}
	if err != nil {
		observability.RecordError(ctx, err)
		var launchErr *process.LaunchError
		if errors.As(err, &launchErr) {
			server.RespondWithError(c, apperrors.LaunchFailed(launchErr.Path, launchErr))
			return
		}
		server.RespondWithError(c, err)
		return
	}

	h.Log.Debug("Process completed", map[string]interface{}{
		"path":      req.Path,
		"exit_code": result.ExitCode,
	})
	server.RespondOK(c, RunResponse{
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	})
}

// ResolveExecutable locates a named executable on the search path. With
// ?quiet=1 it answers existence only: a miss is a 200 with found=false,
// not a 404.
func (h *Handlers) ResolveExecutable(c *gin.Context) {
	name := c.Param("name")

	if quiet, _ := strconv.ParseBool(c.Query("quiet")); quiet {
		server.RespondOK(c, gin.H{"name": name, "found": process.ResolveQuiet(name)})
		return
	}

	path, err := process.Resolve(name)
	if err != nil {
		var resErr *process.ResolutionError
		if errors.As(err, &resErr) {
			server.RespondWithError(c, apperrors.ResolutionFailed(name).WithCause(resErr))
			return
		}
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"name": name, "path": path})
}
