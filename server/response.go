package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondWithError inspects err: an *apperrors.AppError carries its own HTTP
// status and structured body; anything else becomes a generic 500.
func RespondWithError(c *gin.Context, err error) {
	body, status := apperrors.ResponseFor(err)
	c.JSON(status, body)
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondCreated sends a 201 response wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
