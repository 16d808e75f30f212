package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hostkit-io/hostkit/errors"
)

// AuthConfig configures the bearer-token authentication middleware.
type AuthConfig struct {
	// TokenValidator validates a token string and returns its claims.
	TokenValidator func(token string) (map[string]interface{}, error)
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns a Gin middleware that validates Bearer tokens with the
// configured TokenValidator. Validated claims are stored on the Gin
// context; rejections use the same error envelope as the API handlers.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, apperrors.Unauthorized("A bearer token is required."))
			return
		}

		claims, err := cfg.TokenValidator(token)
		if err != nil {
			abortWithError(c, apperrors.InvalidToken())
			return
		}

		for key, value := range claims {
			c.Set(key, value)
		}
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", false
	}
	return token, true
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
