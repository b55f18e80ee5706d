package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
	"github.com/AyaaOthman/todo-app-backend/internal/utils"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type CreateTaskRequest struct {
	TaskListID  uint       `json:"taskListId" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags" binding:"omitempty,max=10"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *[]string  `json:"tags" binding:"omitempty,max=10"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	TaskListID  uint       `json:"taskListId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newTaskResponse(task *models.Task) TaskResponse {
	tags := make([]string, 0, len(task.Tags))

	for _, tag := range task.Tags {
		tags = append(tags, tag.Name)
	}

	return TaskResponse{
		ID:          task.ID,
		TaskListID:  task.TaskListID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Tags:        tags,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	var body CreateTaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	task, err := h.tasks.Create(ctx.Request.Context(), userID, services.CreateTaskInput{
		TaskListID:  body.TaskListID,
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, http.StatusCreated, "Task created successfully", newTaskResponse(task))
}

// List returns the caller's tasks, filtered by whatever criteria the
// query string carries.
func (h *TaskHandler) List(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	filter := services.ParseTaskFilter(ctx.Request.URL.Query())

	tasks, err := h.tasks.List(ctx.Request.Context(), userID, filter)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, newTaskResponse(&tasks[i]))
	}

	respondList(ctx, len(response), response)
}

func (h *TaskHandler) Get(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task ID"})
		return
	}

	task, err := h.tasks.Get(ctx.Request.Context(), userID, taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, newTaskResponse(task))
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task ID"})
		return
	}

	var body UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	task, err := h.tasks.Update(ctx.Request.Context(), userID, taskID, services.UpdateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Completed:   body.Completed,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, http.StatusOK, "Task updated successfully", newTaskResponse(task))
}

func (h *TaskHandler) Toggle(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task ID"})
		return
	}

	task, err := h.tasks.Toggle(ctx.Request.Context(), userID, taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Task marked as incomplete"
	if task.Completed {
		message = "Task marked as completed"
	}

	respondMessage(ctx, http.StatusOK, message, newTaskResponse(task))
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task ID"})
		return
	}

	task, err := h.tasks.Delete(ctx.Request.Context(), userID, taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, http.StatusOK, "Task deleted successfully", newTaskResponse(task))
}
