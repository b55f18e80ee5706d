package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AyaaOthman/todo-app-backend/internal/models"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
	"github.com/AyaaOthman/todo-app-backend/internal/utils"
)

type TaskListHandler struct {
	lists *services.TaskListService
}

func NewTaskListHandler(lists *services.TaskListService) *TaskListHandler {
	return &TaskListHandler{lists: lists}
}

type CreateTaskListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor6"`
}

type UpdateTaskListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor6"`
}

type TaskListResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskListResponse(list *models.TaskList) TaskListResponse {
	return TaskListResponse{
		ID:          list.ID,
		UserID:      list.UserID,
		Name:        list.Name,
		Description: list.Description,
		Color:       list.Color,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

func (h *TaskListHandler) Create(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	var body CreateTaskListRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	list, err := h.lists.Create(ctx.Request.Context(), userID, services.CreateTaskListInput{
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, http.StatusCreated, "Task list created successfully", newTaskListResponse(list))
}

func (h *TaskListHandler) List(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	lists, err := h.lists.List(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskListResponse, 0, len(lists))

	for i := range lists {
		response = append(response, newTaskListResponse(&lists[i]))
	}

	respondList(ctx, len(response), response)
}

func (h *TaskListHandler) Get(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	listID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task list ID"})
		return
	}

	list, err := h.lists.Get(ctx.Request.Context(), userID, listID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, newTaskListResponse(list))
}

func (h *TaskListHandler) Update(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	listID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task list ID"})
		return
	}

	var body UpdateTaskListRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid request"})
		return
	}

	list, err := h.lists.Update(ctx.Request.Context(), userID, listID, services.UpdateTaskListInput{
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, http.StatusOK, "Task list updated successfully", newTaskListResponse(list))
}

func (h *TaskListHandler) Delete(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	listID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, &services.ValidationError{Message: "Invalid task list ID"})
		return
	}

	list, deletedTasks, err := h.lists.Delete(ctx.Request.Context(), userID, listID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	message := fmt.Sprintf("Task list deleted along with %d tasks", deletedTasks)
	respondMessage(ctx, http.StatusOK, message, newTaskListResponse(list))
}
