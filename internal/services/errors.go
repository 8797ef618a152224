package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInUse          = errors.New("user is referenced by existing tasks")
	ErrDefaultRoleMissing = errors.New("default role is not configured")

	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskStatusNotFound = errors.New("task status not found")
	ErrLabelNotFound      = errors.New("label not found")
	ErrExecutorNotFound   = errors.New("executor not found")
	ErrAuthorNotFound     = errors.New("authenticated user not found")

	// ErrUnresolvedReference wraps resolver failures while assembling a task:
	// the request points at a status, label or executor that does not exist.
	ErrUnresolvedReference = errors.New("unresolved reference")

	ErrTaskStatusNameTaken = errors.New("task status name already exists")
	ErrTaskStatusInUse     = errors.New("task status is used by existing tasks")
	ErrLabelNameTaken      = errors.New("label name already exists")
	ErrLabelInUse          = errors.New("label is used by existing tasks")

	ErrNameRequired = errors.New("name is required")
)
