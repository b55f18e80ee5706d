package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AyaaOthman/todo-app-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing the client's if it
// sent one, and exposes it on the response header and the request
// context for logging.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Header(RequestIDHeader, requestID)
		ctx.Request = ctx.Request.WithContext(
			logger.ContextWithRequestID(ctx.Request.Context(), requestID),
		)

		ctx.Next()
	}
}
