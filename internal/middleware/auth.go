package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/logger"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
)

// AuthenticatedUser is what handlers read back from the request context
// after RequireAuth has run.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

const ContextUserKey = "user"

// RequireAuth verifies the Bearer token and loads the user it names.
// Every failure mode, missing header, bad token, expired token, user
// gone, gets the same response so callers cannot probe which it was.
func RequireAuth(tokens *auth.TokenIssuer, users *services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abortUnauthenticated(ctx)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(ctx)
			return
		}

		userID, err := tokens.Verify(parts[1])

		if err != nil {
			abortUnauthenticated(ctx)
			return
		}

		user, err := users.GetByID(ctx.Request.Context(), userID)

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthenticated(ctx)
				return
			}
			logger.ErrorContext(ctx.Request.Context(), "loading authenticated user", "error", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Internal server error",
			})
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}

func abortUnauthenticated(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "Authentication required",
	})
}
