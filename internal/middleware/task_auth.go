package middleware

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/task-manager/internal/auth"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/services"
)

// TaskAuthorizer checks that a principal may delete a task
type TaskAuthorizer interface {
	AuthorizeTaskDeletion(ctx context.Context, principal auth.Principal, id uint64) (*models.Task, error)
}

// UserAuthorizer checks that a principal may change a user record
type UserAuthorizer interface {
	AuthorizeUserMutation(ctx context.Context, principal auth.Principal, id uint64) (*models.User, error)
}

// RequireTaskAuthor allows the request only when the principal authored the task.
// The task is loaded before the body is read: a bad id gives 400, a missing task
// 404 and a foreign task 403.
func RequireTaskAuthor(tasks TaskAuthorizer, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, ok := parseIDParam(c, "Invalid task ID")
		if !ok {
			return
		}

		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if _, err := tasks.AuthorizeTaskDeletion(c.Request.Context(), principal, taskID); err != nil {
			respondGuardError(c, metrics, err, services.ErrTaskNotFound, "Only the author can delete this task")
			return
		}

		c.Next()
	}
}

// RequireUserOwner allows the request only when the principal owns the user record.
func RequireUserOwner(users UserAuthorizer, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "Invalid user ID")
		if !ok {
			return
		}

		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if _, err := users.AuthorizeUserMutation(c.Request.Context(), principal, userID); err != nil {
			respondGuardError(c, metrics, err, services.ErrUserNotFound, "You can only change your own account")
			return
		}

		c.Next()
	}
}

func parseIDParam(c *gin.Context, message string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, message)
		return 0, false
	}
	return id, true
}

func respondGuardError(c *gin.Context, metrics *Metrics, err, notFound error, forbidden string) {
	switch {
	case errors.Is(err, notFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, auth.ErrForbidden):
		metrics.AuthFailure("forbidden")
		apierrors.Forbidden(c, forbidden)
	default:
		log.WithError(err).Error("Ownership check failed")
		apierrors.InternalError(c, "")
	}
}
