package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	maxListNameLen        = 100
	maxListDescriptionLen = 500
)

// TaskListService owns task list CRUD and the cascade that removes a
// list together with all of its tasks.
type TaskListService struct {
	db    *gorm.DB
	guard *OwnershipGuard
}

func NewTaskListService(db *gorm.DB, guard *OwnershipGuard) *TaskListService {
	return &TaskListService{db: db, guard: guard}
}

type CreateTaskListInput struct {
	Name        string
	Description string
	Color       string
}

// UpdateTaskListInput carries partial updates. Nil fields keep their
// current value.
type UpdateTaskListInput struct {
	Name        *string
	Description *string
	Color       *string
}

func (s *TaskListService) Create(ctx context.Context, userID uint, in CreateTaskListInput) (*models.TaskList, error) {
	name, err := validateListName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := validateListDescription(in.Description); err != nil {
		return nil, err
	}
	if err := validateListColor(in.Color); err != nil {
		return nil, err
	}

	list := models.TaskList{
		UserID:      userID,
		Name:        name,
		Description: in.Description,
		Color:       in.Color,
	}

	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, fmt.Errorf("create task list: %w", err)
	}

	return &list, nil
}

// List returns the caller's task lists, newest first.
func (s *TaskListService) List(ctx context.Context, userID uint) ([]models.TaskList, error) {
	var lists []models.TaskList

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("list task lists: %w", err)
	}

	return lists, nil
}

func (s *TaskListService) Get(ctx context.Context, userID, listID uint) (*models.TaskList, error) {
	return s.guard.ListOwned(ctx, userID, listID)
}

func (s *TaskListService) Update(ctx context.Context, userID, listID uint, in UpdateTaskListInput) (*models.TaskList, error) {
	list, err := s.guard.ListOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := validateListName(*in.Name)
		if err != nil {
			return nil, err
		}
		list.Name = name
	}

	if in.Description != nil {
		if err := validateListDescription(*in.Description); err != nil {
			return nil, err
		}
		list.Description = *in.Description
	}

	if in.Color != nil {
		if err := validateListColor(*in.Color); err != nil {
			return nil, err
		}
		list.Color = *in.Color
	}

	if err := s.db.WithContext(ctx).Save(list).Error; err != nil {
		return nil, fmt.Errorf("update task list: %w", err)
	}

	return list, nil
}

// Delete removes the list and every task under it in one transaction,
// so no request can observe a half-deleted list. It returns the deleted
// list and how many tasks went with it.
func (s *TaskListService) Delete(ctx context.Context, userID, listID uint) (*models.TaskList, int64, error) {
	list, err := s.guard.ListOwned(ctx, userID, listID)
	if err != nil {
		return nil, 0, err
	}

	var deletedTasks int64

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("task_id IN (SELECT id FROM tasks WHERE task_list_id = ?)", list.ID).
			Delete(&models.TaskTag{}).Error
		if err != nil {
			return fmt.Errorf("delete task tags: %w", err)
		}

		result := tx.Where("task_list_id = ?", list.ID).Delete(&models.Task{})
		if result.Error != nil {
			return fmt.Errorf("delete tasks: %w", result.Error)
		}
		deletedTasks = result.RowsAffected

		if err := tx.Delete(&models.TaskList{}, list.ID).Error; err != nil {
			return fmt.Errorf("delete task list: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return list, deletedTasks, nil
}

func validateListName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", validationErrorf("Name is required")
	}
	if utf8.RuneCountInString(name) > maxListNameLen {
		return "", validationErrorf("Name must be %d characters or less", maxListNameLen)
	}

	return name, nil
}

func validateListDescription(description string) error {
	if utf8.RuneCountInString(description) > maxListDescriptionLen {
		return validationErrorf("Description must be %d characters or less", maxListDescriptionLen)
	}
	return nil
}

func validateListColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorPattern.MatchString(color) {
		return validationErrorf("Color must be a hex color like #4A90D9")
	}
	return nil
}
