package gateway

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temirov/chaotic-gateway/internal/constants"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

// sanitizeRequestURI replaces sensitive query parameter values with a placeholder.
func sanitizeRequestURI(requestURL *url.URL) string {
	queryParameters := requestURL.Query()
	if queryParameters.Has(queryParameterKey) {
		queryParameters.Set(queryParameterKey, redactedPlaceholder)
	}
	sanitizedURL := *requestURL
	sanitizedURL.RawQuery = queryParameters.Encode()
	return sanitizedURL.RequestURI()
}

// requestResponseLogger tags each request with an identifier and logs its arrival and completion.
func requestResponseLogger(structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		requestStart := time.Now()
		requestID := strings.TrimSpace(ginContext.GetHeader(headerRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ginContext.Header(headerRequestID, requestID)

		structuredLogger.Infow(
			logEventRequestReceived,
			constants.LogFieldRequestID, requestID,
			logFieldMethod, ginContext.Request.Method,
			logFieldPath, sanitizeRequestURI(ginContext.Request.URL),
			logFieldClientIP, ginContext.ClientIP(),
		)

		ginContext.Next()

		structuredLogger.Infow(
			logEventResponseSent,
			constants.LogFieldRequestID, requestID,
			logFieldStatus, ginContext.Writer.Status(),
			constants.LogFieldLatencyMilliseconds, time.Since(requestStart).Milliseconds(),
		)
	}
}

// secretMiddleware enforces the shared secret through a constant-time comparison of the `key` query parameter.
func secretMiddleware(sharedSecret string, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	normalizedSecret := strings.TrimSpace(sharedSecret)
	expectedSecretBytes := []byte(normalizedSecret)
	expectedSecretFingerprint := utils.SecretFingerprint(normalizedSecret)
	return func(ginContext *gin.Context) {
		presentedKey := strings.TrimSpace(ginContext.Query(queryParameterKey))
		if !constantTimeEquals(expectedSecretBytes, []byte(presentedKey)) {
			structuredLogger.Warnw(
				logEventForbidden,
				logFieldExpectedKey, expectedSecretFingerprint,
			)
			ginContext.String(http.StatusForbidden, ErrorMissingClientKey)
			ginContext.Abort()
			return
		}
		ginContext.Next()
	}
}

// constantTimeEquals compares two byte slices in constant time to reduce side-channel signal.
func constantTimeEquals(firstValue []byte, secondValue []byte) bool {
	if len(firstValue) != len(secondValue) {
		_ = subtle.ConstantTimeCompare(firstValue, firstValue)
		return false
	}
	return subtle.ConstantTimeCompare(firstValue, secondValue) == 1
}
