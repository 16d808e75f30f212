package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header echoed on every response.
const HeaderRequestID = "X-Request-Id"

// RequestID tags each request with a correlation ID. A client-supplied ID
// is preserved; otherwise a fresh UUID is generated. The ID is written
// back onto the request header so downstream handlers and the access log
// see the same value the client does.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Request.Header.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
