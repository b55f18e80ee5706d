package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

// newTestDB opens a private in-memory database with the full schema.
// The pool is pinned to one connection so the memory database survives
// for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("access test connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = gdb.AutoMigrate(&models.User{}, &models.TaskList{}, &models.Task{}, &models.TaskTag{})
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return gdb
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := NewUserService(db).Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}

	return user
}

func seedList(t *testing.T, db *gorm.DB, userID uint, name string) *models.TaskList {
	t.Helper()

	list, err := NewTaskListService(db, NewOwnershipGuard(db)).Create(context.Background(), userID, CreateTaskListInput{
		Name: name,
	})
	if err != nil {
		t.Fatalf("seed list %s: %v", name, err)
	}

	return list
}

func seedTask(t *testing.T, db *gorm.DB, userID uint, in CreateTaskInput) *models.Task {
	t.Helper()

	task, err := NewTaskService(db, NewOwnershipGuard(db)).Create(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("seed task %s: %v", in.Title, err)
	}

	return task
}
