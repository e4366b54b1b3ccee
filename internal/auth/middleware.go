package auth

import (
	"net/http"

	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/middleware"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// authTypeKey marks requests that passed the API key gate
const authTypeKey = "authType"

// EnsureValidAPIKey is a middleware that rejects requests whose X-API-KEY
// header is missing or not accepted by verifier
func EnsureValidAPIKey(verifier interfaces.APIKeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(constants.APIKeyHeader)

		var reason error
		switch {
		case apiKey == "":
			reason = ErrMissingAPIKey
		case !verifier.Verify(apiKey):
			reason = ErrInvalidAPIKey
		}

		if reason != nil {
			correlationID := middleware.GetCorrelationID(c)
			logger.Warn("API key rejected",
				zap.String("correlation_id", correlationID),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(reason),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error:         constants.InvalidAPIKeyMessage,
				CorrelationID: correlationID,
			})
			return
		}

		c.Set(authTypeKey, "api_key")
		c.Next()
	}
}

// IsAuthenticated reports whether the request went through EnsureValidAPIKey
func IsAuthenticated(c *gin.Context) bool {
	return c.GetString(authTypeKey) == "api_key"
}
