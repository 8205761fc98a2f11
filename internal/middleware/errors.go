package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fundpulse/internal/domain/dto"
	"github.com/guttosm/fundpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (via c.Error)
// into a standardized 500 JSON response, so no handler ever leaks a raw
// error or terminates a request abnormally.
//
// Handlers that already wrote a specific error status are left alone; this
// is the safety net for everything unclassified.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes a standardized JSON error response with the given
// status and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Warn().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
