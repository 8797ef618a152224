package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

// nameRequest is the body for creating or renaming a status or label
type nameRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type TaskStatusHandler struct {
	statusService *services.TaskStatusService
}

func NewTaskStatusHandler(statusService *services.TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{statusService: statusService}
}

func (h *TaskStatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatusDTOs(statuses))
}

func (h *TaskStatusHandler) GetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.statusService.GetStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatusDTO(*status))
}

func (h *TaskStatusHandler) CreateStatus(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.CreateStatus(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskStatusDTO(*status))
}

func (h *TaskStatusHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.UpdateStatus(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatusDTO(*status))
}

// DeleteStatus deletes a status that no task uses
func (h *TaskStatusHandler) DeleteStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.statusService.DeleteStatus(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
