package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/chirp/internal/api/dto"
	"github.com/martijn/chirp/internal/core/service"
	"github.com/martijn/chirp/internal/logger"
	"github.com/martijn/chirp/pkg/config"
)

// ErrorHandlerMiddleware recovers from panics and converts errors attached
// via c.Error into JSON responses. Unexpected failures are logged server-side
// and surfaced as a generic 500; details only leak in dev mode.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: "an unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var svcErr *service.ServiceError
		if errors.As(err, &svcErr) {
			c.JSON(svcErr.Code, dto.ErrorResponse{Error: svcErr.Message})
			return
		}

		logger.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		resp := dto.ErrorResponse{Error: "an unexpected error occurred"}
		if config.IsDevMode() {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
