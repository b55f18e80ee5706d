package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/logger"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
)

// successResponse is the envelope every 2xx reply uses. Count is a
// pointer so list endpoints still report it when it is zero.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, successResponse{Success: true, Data: data})
}

func respondMessage(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, successResponse{Success: true, Message: message, Data: data})
}

func respondList(ctx *gin.Context, count int, data any) {
	ctx.JSON(http.StatusOK, successResponse{Success: true, Count: &count, Data: data})
}

// respondError maps a service error onto the failure envelope. Anything
// unclassified is logged and reported as a bare 500 so internals never
// leak to the client.
func respondError(ctx *gin.Context, err error) {
	status, message := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request.Context(), "request failed",
			"error", err,
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
		)
	}

	ctx.JSON(status, errorResponse{Success: false, Error: message})
}

func classifyError(err error) (int, string) {
	var ve *services.ValidationError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, services.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, services.ErrTaskListNotFound):
		return http.StatusNotFound, "Task list not found"
	case errors.Is(err, services.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
