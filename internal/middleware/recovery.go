package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbita/challenger-backend/internal/response"
	"github.com/rs/zerolog"
)

// Recovery converts any panic escaping a handler into a generic
// client-error envelope. The detail goes to the operator log only.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Str("request_id", response.RequestID(c)).
					Msg("handler panic")
				c.AbortWithStatusJSON(http.StatusBadRequest, response.Fail("An error occurred."))
			}
		}()
		c.Next()
	}
}
