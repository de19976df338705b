package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/chirp/internal/api/dto"
	"github.com/martijn/chirp/internal/core/service"
	"github.com/martijn/chirp/internal/logger"
	"github.com/martijn/chirp/pkg/config"
)

// respondError maps service errors onto their HTTP status. Anything else is
// a storage or programming failure: logged here, generic 500 to the client,
// details only in dev mode.
func respondError(c *gin.Context, err error) {
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
