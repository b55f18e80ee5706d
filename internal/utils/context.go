package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/middleware"
)

// CurrentUser reads the authenticated user RequireAuth stored on the
// context. It only fails when the middleware did not run.
func CurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	value, exists := ctx.Get(middleware.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, auth.ErrUnauthenticated
	}

	user, ok := value.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, auth.ErrUnauthenticated
	}

	return user, nil
}

func CurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := CurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}
