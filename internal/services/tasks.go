package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

const (
	maxTaskTitleLen       = 200
	maxTaskDescriptionLen = 1000
	maxTaskTags           = 10
)

// TaskService owns task CRUD. Every operation goes through the
// ownership guard first, so a task is only ever touched by the owner of
// its parent list.
type TaskService struct {
	db    *gorm.DB
	guard *OwnershipGuard
}

func NewTaskService(db *gorm.DB, guard *OwnershipGuard) *TaskService {
	return &TaskService{db: db, guard: guard}
}

type CreateTaskInput struct {
	TaskListID  uint
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Tags        []string
}

// UpdateTaskInput carries partial updates. Nil fields keep their
// current value; a non-nil Tags replaces the whole tag set.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
	Tags        *[]string
}

func (s *TaskService) Create(ctx context.Context, userID uint, in CreateTaskInput) (*models.Task, error) {
	if in.TaskListID == 0 {
		return nil, validationErrorf("Task list ID is required")
	}

	list, err := s.guard.ListOwned(ctx, userID, in.TaskListID)
	if err != nil {
		return nil, err
	}

	title, err := validateTaskTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if err := validateTaskDescription(in.Description); err != nil {
		return nil, err
	}

	priority, err := normalizePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		TaskListID:  list.ID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     in.DueDate,
		Tags:        tags,
	}

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &task, nil
}

// List returns tasks across every list the caller owns, or within one
// owned list when the filter names one, newest first. Naming a list the
// caller does not own fails with ErrTaskListNotFound before any task is
// read.
func (s *TaskService) List(ctx context.Context, userID uint, filter TaskFilter) ([]models.Task, error) {
	var listIDs []uint

	if filter.TaskListID != nil {
		list, err := s.guard.ListOwned(ctx, userID, *filter.TaskListID)
		if err != nil {
			return nil, err
		}
		listIDs = []uint{list.ID}
	} else {
		err := s.db.WithContext(ctx).Model(&models.TaskList{}).
			Where("user_id = ?", userID).
			Pluck("id", &listIDs).Error
		if err != nil {
			return nil, fmt.Errorf("list owned task lists: %w", err)
		}
		if len(listIDs) == 0 {
			return []models.Task{}, nil
		}
	}

	var tasks []models.Task

	err := s.db.WithContext(ctx).
		Where("task_list_id IN ?", listIDs).
		Scopes(filter.Scope()).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, _, err := s.guard.TaskOwned(ctx, userID, taskID)
	return task, err
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint, in UpdateTaskInput) (*models.Task, error) {
	task, _, err := s.guard.TaskOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if in.Title != nil {
		title, err := validateTaskTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}

	if in.Description != nil {
		if err := validateTaskDescription(*in.Description); err != nil {
			return nil, err
		}
		updates["description"] = *in.Description
	}

	if in.Completed != nil {
		updates["completed"] = *in.Completed
	}

	if in.Priority != nil {
		priority, err := normalizePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		updates["priority"] = priority
	}

	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}

	var tags []models.TaskTag
	replaceTags := in.Tags != nil
	if replaceTags {
		tags, err = normalizeTags(*in.Tags)
		if err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return fmt.Errorf("update task: %w", err)
			}
		}

		if replaceTags {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
				return fmt.Errorf("delete task tags: %w", err)
			}
			for i := range tags {
				tags[i].TaskID = task.ID
			}
			if len(tags) > 0 {
				if err := tx.Create(&tags).Error; err != nil {
					return fmt.Errorf("create task tags: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, _, err := s.guard.TaskOwned(ctx, userID, task.ID)
	return updated, err
}

// Toggle flips the completion state and returns the updated task.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, _, err := s.guard.TaskOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed

	if err := s.db.WithContext(ctx).Model(task).Update("completed", task.Completed).Error; err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	return task, nil
}

// Delete removes the task and its tags and returns what was deleted.
func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, _, err := s.guard.TaskOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
			return fmt.Errorf("delete task tags: %w", err)
		}
		if err := tx.Delete(&models.Task{}, task.ID).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func validateTaskTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return "", validationErrorf("Title is required")
	}
	if utf8.RuneCountInString(title) > maxTaskTitleLen {
		return "", validationErrorf("Title must be %d characters or less", maxTaskTitleLen)
	}

	return title, nil
}

func validateTaskDescription(description string) error {
	if utf8.RuneCountInString(description) > maxTaskDescriptionLen {
		return validationErrorf("Description must be %d characters or less", maxTaskDescriptionLen)
	}
	return nil
}

// normalizePriority applies the default and rejects unknown values.
func normalizePriority(priority string) (string, error) {
	switch priority {
	case "":
		return models.PriorityMedium, nil
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return priority, nil
	default:
		return "", validationErrorf("Priority must be one of: low, medium, high")
	}
}

// normalizeTags trims each tag, drops empties, and dedupes keeping the
// first occurrence, preserving submission order. The limit applies to
// the submitted slice, before normalization.
func normalizeTags(raw []string) ([]models.TaskTag, error) {
	if len(raw) > maxTaskTags {
		return nil, validationErrorf("A task can have at most %d tags", maxTaskTags)
	}

	seen := make(map[string]bool, len(raw))
	var tags []models.TaskTag

	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, models.TaskTag{Position: len(tags), Name: name})
	}

	return tags, nil
}
