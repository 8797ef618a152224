package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/constants"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
)

// TokenValidator validates a bearer token and returns its principal
type TokenValidator interface {
	Validate(token string) (auth.Principal, error)
}

// RequireAuth checks the bearer token and stores the principal for the request.
// metrics may be nil.
func RequireAuth(tokens TokenValidator, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			metrics.AuthFailure("missing")
			apierrors.Unauthorized(c, "")
			return
		}

		principal, err := tokens.Validate(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				metrics.AuthFailure("expired")
				apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeTokenExpired, "Token has expired")
				return
			}
			log.WithError(err).Debug("Rejected bearer token")
			metrics.AuthFailure("invalid")
			apierrors.Unauthorized(c, "Invalid token")
			return
		}

		// Store principal in both contexts so services and handlers see the same identity
		c.Set(constants.ContextKeyPrincipal, principal)
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from the gin context,
// falling back to the request context.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	var principal auth.Principal
	var ok bool
	if value, exists := c.Get(constants.ContextKeyPrincipal); exists {
		principal, ok = value.(auth.Principal)
	} else if c.Request != nil {
		principal, ok = auth.PrincipalFrom(c.Request.Context())
	}
	if !ok || principal.IsZero() {
		return auth.Principal{}, false
	}
	return principal, true
}
