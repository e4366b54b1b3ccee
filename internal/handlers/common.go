package handlers

import (
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/middleware"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)
	logger.Error(message,
		zap.Error(err),
		zap.String("correlation_id", correlationID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	)
	c.JSON(statusCode, responses.ErrorResponse{Error: message, CorrelationID: correlationID})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
