package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

// OwnershipGuard answers one question: does this user own this
// resource? Every task list access checks the user_id column directly;
// task access walks task -> list -> user. A resource that exists but
// belongs to someone else is reported as not found, identical to one
// that does not exist.
type OwnershipGuard struct {
	db *gorm.DB
}

func NewOwnershipGuard(db *gorm.DB) *OwnershipGuard {
	return &OwnershipGuard{db: db}
}

// ListOwned returns the task list only when it exists and belongs to
// userID, otherwise ErrTaskListNotFound.
func (g *OwnershipGuard) ListOwned(ctx context.Context, userID, listID uint) (*models.TaskList, error) {
	var list models.TaskList

	err := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch task list: %w", err)
	}

	return &list, nil
}

// TaskOwned resolves the task, then checks that its parent list belongs
// to userID, and returns both. A missing task and a task behind someone
// else's list both come back as ErrTaskNotFound. Tags are loaded in
// submission order.
func (g *OwnershipGuard) TaskOwned(ctx context.Context, userID, taskID uint) (*models.Task, *models.TaskList, error) {
	var task models.Task

	err := g.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("fetch task: %w", err)
	}

	list, err := g.ListOwned(ctx, userID, task.TaskListID)
	if err != nil {
		if errors.Is(err, ErrTaskListNotFound) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, err
	}

	return &task, list, nil
}
