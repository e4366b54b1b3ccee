package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cofipei/chart-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedStringLen bounds string values in logged bodies. Encoded images
// are far longer and are replaced by their size.
const maxLoggedStringLen = 256

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware provides detailed request/response logging in development mode
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.With(zap.String("correlation_id", GetCorrelationID(c)))

		requestBody, err := replayBody(c.Request)
		if err != nil {
			log.Warn("Could not read request body for logging", zap.Error(err))
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", redactHeaders(c.Request.Header)),
			zap.Any("body", loggableJSON(c.GetHeader("Content-Type"), requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		responseBody := blw.body.Bytes()
		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("headers", redactHeaders(c.Writer.Header())),
			zap.Any("body", loggableJSON(c.Writer.Header().Get("Content-Type"), responseBody)),
			zap.Int("body_size", len(responseBody)),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware provides basic request logging for production
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}

func redactHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for key, values := range header {
		switch {
		case redactedHeaders[http.CanonicalHeaderKey(key)]:
			out[key] = "[REDACTED]"
		case len(values) > 0:
			out[key] = values[0]
		}
	}
	return out
}

// loggableJSON decodes a JSON body for logging with long strings elided.
// Non-JSON bodies are not logged.
func loggableJSON(contentType string, body []byte) interface{} {
	if len(body) == 0 || !strings.HasPrefix(contentType, "application/json") {
		return nil
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Sprintf("[unparseable JSON, %d bytes]", len(body))
	}
	return elideLongStrings(decoded)
}

func elideLongStrings(v interface{}) interface{} {
	switch value := v.(type) {
	case string:
		if len(value) > maxLoggedStringLen {
			return fmt.Sprintf("[%d bytes elided]", len(value))
		}
		return value
	case map[string]interface{}:
		for k, nested := range value {
			value[k] = elideLongStrings(nested)
		}
		return value
	case []interface{}:
		for i, nested := range value {
			value[i] = elideLongStrings(nested)
		}
		return value
	default:
		return v
	}
}
