package constants

// Context keys
const (
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"
)

// Roles
const (
	RoleUser = "USER"
)

// Validation bounds
const (
	MinPasswordLength = 3
	// MaxPasswordLength is bcrypt's input limit, counted in bytes.
	MaxPasswordLength = 72
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Headers
const (
	RequestIDHeader  = "X-Request-ID"
	TotalCountHeader = "X-Total-Count"
)
