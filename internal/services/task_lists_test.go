package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
)

func TestCreateTaskList(t *testing.T) {
	db := newTestDB(t)
	lists := NewTaskListService(db, NewOwnershipGuard(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")

	t.Run("creates with trimmed name", func(t *testing.T) {
		list, err := lists.Create(ctx, owner.ID, CreateTaskListInput{
			Name:        "  Groceries  ",
			Description: "Weekly shopping",
			Color:       "#3498DB",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if list.ID == 0 {
			t.Error("Create returned a list without an ID")
		}
		if list.Name != "Groceries" {
			t.Errorf("Name = %q, want trimmed", list.Name)
		}
		if list.UserID != owner.ID {
			t.Errorf("UserID = %d, want %d", list.UserID, owner.ID)
		}
		if list.Color != "#3498DB" {
			t.Errorf("Color = %q", list.Color)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateTaskListInput
		}{
			{"missing name", CreateTaskListInput{}},
			{"blank name", CreateTaskListInput{Name: "   "}},
			{"name too long", CreateTaskListInput{Name: strings.Repeat("n", 101)}},
			{"description too long", CreateTaskListInput{Name: "ok", Description: strings.Repeat("d", 501)}},
			{"color missing hash", CreateTaskListInput{Name: "ok", Color: "3498DB"}},
			{"color too short", CreateTaskListInput{Name: "ok", Color: "#fff"}},
			{"color bad digits", CreateTaskListInput{Name: "ok", Color: "#34G8DB"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := lists.Create(ctx, owner.ID, tt.input)

				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("Create error = %v, want a ValidationError", err)
				}
			})
		}
	})

	t.Run("accepts boundary lengths", func(t *testing.T) {
		_, err := lists.Create(ctx, owner.ID, CreateTaskListInput{
			Name:        strings.Repeat("n", 100),
			Description: strings.Repeat("d", 500),
			Color:       "#abcdef",
		})
		if err != nil {
			t.Errorf("Create at the limits failed: %v", err)
		}
	})
}

func TestListTaskLists(t *testing.T) {
	db := newTestDB(t)
	lists := NewTaskListService(db, NewOwnershipGuard(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	seedList(t, db, owner.ID, "First")
	seedList(t, db, owner.ID, "Second")
	seedList(t, db, other.ID, "Not yours")

	got, err := lists.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("List returned %d lists, want 2", len(got))
	}
	if got[0].Name != "Second" || got[1].Name != "First" {
		t.Errorf("List order = %q, %q, want newest first", got[0].Name, got[1].Name)
	}

	empty, err := lists.List(ctx, owner.ID+1000)
	if err != nil {
		t.Fatalf("List for an unknown user failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("List for an unknown user returned %d lists", len(empty))
	}
}

func TestUpdateTaskList(t *testing.T) {
	db := newTestDB(t)
	lists := NewTaskListService(db, NewOwnershipGuard(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		list, err := lists.Create(ctx, owner.ID, CreateTaskListInput{
			Name:        "Chores",
			Description: "Around the house",
			Color:       "#112233",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		updated, err := lists.Update(ctx, owner.ID, list.ID, UpdateTaskListInput{Color: strPtr("#AABBCC")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.Color != "#AABBCC" {
			t.Errorf("Color = %q, want #AABBCC", updated.Color)
		}
		if updated.Name != "Chores" || updated.Description != "Around the house" {
			t.Errorf("other fields changed: %q %q", updated.Name, updated.Description)
		}
	})

	t.Run("rejects invalid name and leaves the row unchanged", func(t *testing.T) {
		list, err := lists.Create(ctx, owner.ID, CreateTaskListInput{Name: "Stable"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		_, err = lists.Update(ctx, owner.ID, list.ID, UpdateTaskListInput{Name: strPtr("  ")})

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Update error = %v, want a ValidationError", err)
		}

		reloaded, err := lists.Get(ctx, owner.ID, list.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if reloaded.Name != "Stable" {
			t.Errorf("Name = %q, want untouched", reloaded.Name)
		}
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		list, err := lists.Create(ctx, owner.ID, CreateTaskListInput{Name: "Private"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		_, err = lists.Update(ctx, stranger.ID, list.ID, UpdateTaskListInput{Name: strPtr("Hijacked")})
		if !errors.Is(err, ErrTaskListNotFound) {
			t.Errorf("Update error = %v, want ErrTaskListNotFound", err)
		}
	})
}

func TestDeleteTaskListCascades(t *testing.T) {
	db := newTestDB(t)
	lists := NewTaskListService(db, NewOwnershipGuard(db))
	tasks := NewTaskService(db, NewOwnershipGuard(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	doomed := seedList(t, db, owner.ID, "Doomed")
	keeper := seedList(t, db, owner.ID, "Keeper")

	for _, title := range []string{"One", "Two", "Three"} {
		seedTask(t, db, owner.ID, CreateTaskInput{
			TaskListID: doomed.ID,
			Title:      title,
			Tags:       []string{"tag-" + title},
		})
	}
	kept := seedTask(t, db, owner.ID, CreateTaskInput{TaskListID: keeper.ID, Title: "Kept"})

	if _, _, err := lists.Delete(ctx, stranger.ID, doomed.ID); !errors.Is(err, ErrTaskListNotFound) {
		t.Errorf("Delete by a stranger: error = %v, want ErrTaskListNotFound", err)
	}

	deleted, deletedTasks, err := lists.Delete(ctx, owner.ID, doomed.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Name != "Doomed" {
		t.Errorf("Delete returned %q, want the deleted list", deleted.Name)
	}
	if deletedTasks != 3 {
		t.Errorf("Delete reported %d removed tasks, want 3", deletedTasks)
	}

	if _, err := lists.Get(ctx, owner.ID, doomed.ID); !errors.Is(err, ErrTaskListNotFound) {
		t.Errorf("Get after delete: error = %v, want ErrTaskListNotFound", err)
	}

	var taskCount int64
	if err := db.Model(&models.Task{}).Where("task_list_id = ?", doomed.ID).Count(&taskCount).Error; err != nil {
		t.Fatalf("counting tasks: %v", err)
	}
	if taskCount != 0 {
		t.Errorf("tasks left behind = %d, want 0", taskCount)
	}

	var tagCount int64
	if err := db.Model(&models.TaskTag{}).Count(&tagCount).Error; err != nil {
		t.Fatalf("counting tag rows: %v", err)
	}
	if tagCount != 0 {
		t.Errorf("tag rows left behind = %d, want 0", tagCount)
	}

	if _, err := tasks.Get(ctx, owner.ID, kept.ID); err != nil {
		t.Errorf("task in another list disappeared: %v", err)
	}
	if _, err := lists.Get(ctx, owner.ID, keeper.ID); err != nil {
		t.Errorf("sibling list disappeared: %v", err)
	}

	second, removed, err := lists.Delete(ctx, owner.ID, keeper.ID)
	if err != nil {
		t.Fatalf("Delete of the second list failed: %v", err)
	}
	if second.Name != "Keeper" || removed != 1 {
		t.Errorf("Delete returned %q with %d removed tasks, want Keeper with 1", second.Name, removed)
	}
}
