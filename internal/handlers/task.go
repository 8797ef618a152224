package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
	"github.com/yukikurage/task-manager/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// taskRequest is the body of task create and update requests
type taskRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Description  string   `json:"description"`
	ExecutorID   *uint64  `json:"executorId" binding:"omitempty,gt=0"`
	TaskStatusID uint64   `json:"taskStatusId" binding:"required"`
	LabelIDs     []uint64 `json:"labelIds"`
}

func (r taskRequest) input() services.TaskInput {
	return services.TaskInput{
		Name:         r.Name,
		Description:  r.Description,
		TaskStatusID: r.TaskStatusID,
		ExecutorID:   r.ExecutorID,
		LabelIDs:     r.LabelIDs,
	}
}

// ListTasks returns all tasks, or one page of them when page or limit is given
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params, paged := utils.GetPaginationParams(c)
	if !paged {
		tasks, err := h.taskService.ListTasks(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
		return
	}

	tasks, total, err := h.taskService.ListTaskPage(c.Request.Context(), params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(constants.TotalCountHeader, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task authored by the caller
func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req taskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces an existing task's fields and references
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req taskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task.
// RequireTaskAuthor has already checked that the caller is the author.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), principal, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
