package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestRegisterAndVerify(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	user, err := users.Register(ctx, RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Register returned a user without an ID")
	}
	if user.PasswordHash == "correct horse" {
		t.Error("Register stored the plaintext password")
	}

	verified, err := users.Verify(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if verified.ID != user.ID {
		t.Errorf("Verify returned user %d, want %d", verified.ID, user.ID)
	}

	if _, err := users.Verify(ctx, "ada@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify with wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := users.Verify(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify with unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	if _, err := users.Register(ctx, RegisterInput{Name: "First", Email: "taken@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := users.Register(ctx, RegisterInput{Name: "Second", Email: "taken@example.com", Password: "different456"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("second Register: error = %v, want ErrDuplicateEmail", err)
	}

	if _, err := users.Register(ctx, RegisterInput{Name: "Third", Email: "free@example.com", Password: "password123"}); err != nil {
		t.Errorf("Register with a fresh email failed: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@example.com", Password: "password123"}},
		{"blank name", RegisterInput{Name: "   ", Email: "a@example.com", Password: "password123"}},
		{"missing email", RegisterInput{Name: "Ada", Password: "password123"}},
		{"short password", RegisterInput{Name: "Ada", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.Register(ctx, tt.input)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Register error = %v, want a ValidationError", err)
			}
		})
	}
}

func TestRegisterKeepsEmailCase(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	user, err := users.Register(ctx, RegisterInput{Name: "Ada", Email: "Ada@Example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "Ada@Example.com" {
		t.Errorf("stored email = %q, want the submitted casing", user.Email)
	}

	if _, err := users.Verify(ctx, "Ada@Example.com", "password123"); err != nil {
		t.Errorf("Verify with the original casing failed: %v", err)
	}
	if _, err := users.Verify(ctx, "ada@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify with different casing: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterTrimsNameAndEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	user, err := users.Register(ctx, RegisterInput{Name: "  Ada  ", Email: "  ada@example.com  ", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Name != "Ada" || user.Email != "ada@example.com" {
		t.Errorf("stored name/email = %q/%q, want trimmed values", user.Name, user.Email)
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "ada@example.com")

	found, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Email != "ada@example.com" {
		t.Errorf("GetByID returned email %q", found.Email)
	}

	if _, err := users.GetByID(ctx, user.ID+1000); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetByID for a missing user: error = %v, want gorm.ErrRecordNotFound", err)
	}
}
