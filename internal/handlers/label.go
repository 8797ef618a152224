package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

type LabelHandler struct {
	labelService *services.LabelService
}

func NewLabelHandler(labelService *services.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

func (h *LabelHandler) ListLabels(c *gin.Context) {
	labels, err := h.labelService.ListLabels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTOs(labels))
}

func (h *LabelHandler) GetLabel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	label, err := h.labelService.GetLabel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLabelDTO(*label))
}

func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.labelService.UpdateLabel(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

// DeleteLabel deletes a label that is not attached to any task
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.labelService.DeleteLabel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
