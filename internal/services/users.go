package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

// UserService owns signup and credential verification. Passwords are
// stored as bcrypt hashes only; emails are kept exactly as submitted
// and compared case-sensitively.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new account. A taken email returns
// ErrDuplicateEmail whether it is caught by the pre-check or by the
// unique index when two signups race.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return nil, validationErrorf("Name is required")
	}
	if email == "" {
		return nil, validationErrorf("Email is required")
	}
	if len(in.Password) < 8 {
		return nil, validationErrorf("Password must be at least 8 characters")
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique index catches signups that race past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// Verify checks a login attempt. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetByID loads a user by primary key. Not-found comes back as
// gorm.ErrRecordNotFound for the auth middleware to translate.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	return &user, nil
}
