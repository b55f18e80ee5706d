package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/models"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
	"github.com/AyaaOthman/todo-app-backend/internal/utils"
)

type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenIssuer
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest deliberately skips format checks beyond presence: a
// malformed email is just an email that matches no account, and must
// fail exactly like a wrong password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authPayload struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var body SignupRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	user, err := h.users.Register(ctx.Request.Context(), services.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)

	if err != nil {
		respondError(ctx, fmt.Errorf("issue token: %w", err))
		return
	}

	respondMessage(ctx, http.StatusCreated, "User registered successfully", authPayload{
		User:  newUserResponse(user),
		Token: token,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	user, err := h.users.Verify(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)

	if err != nil {
		respondError(ctx, fmt.Errorf("issue token: %w", err))
		return
	}

	respondMessage(ctx, http.StatusOK, "Login successful", authPayload{
		User:  newUserResponse(user),
		Token: token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := utils.CurrentUser(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
