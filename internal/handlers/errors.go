package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/task-manager/internal/auth"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// respondError maps a service error onto an HTTP error response
func respondError(c *gin.Context, err error) {
	switch {
	// Checked first: a dangling reference wraps a not-found sentinel
	case errors.Is(err, services.ErrUnresolvedReference):
		apierrors.UnprocessableEntity(c, apierrors.ErrCodeUnresolvedRef, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrPasswordLength):
		apierrors.UnprocessableEntity(c, apierrors.ErrCodeValidationFailed, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrAuthorNotFound):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, auth.ErrForbidden):
		apierrors.Forbidden(c, "")

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskStatusNotFound),
		errors.Is(err, services.ErrLabelNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrTaskStatusNameTaken),
		errors.Is(err, services.ErrLabelNameTaken):
		apierrors.Conflict(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, services.ErrUserInUse),
		errors.Is(err, services.ErrTaskStatusInUse),
		errors.Is(err, services.ErrLabelInUse):
		apierrors.Conflict(c, apierrors.ErrCodeInUse, err.Error())

	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled request error")
		apierrors.InternalError(c, "")
	}
}

// requirePrincipal returns the authenticated principal or answers 401
func requirePrincipal(c *gin.Context) (auth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return principal, ok
}

// parseID reads the :id path parameter or answers 400
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
