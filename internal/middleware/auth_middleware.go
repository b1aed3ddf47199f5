package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

const (
	// RoleHeader names the role the caller authenticates as
	RoleHeader = "role"

	principalKey = "principal"
)

var (
	errMissingRole    = apperrors.NewCustomError(apperrors.ErrMissingCredentials, "role header is required")
	errMissingToken   = apperrors.NewCustomError(apperrors.ErrMissingCredentials, "token header is required")
	errRoleNotAllowed = apperrors.NewCustomError(apperrors.ErrUnauthorizedRole, "role is not allowed for this resource")
	errTokenExpired   = apperrors.NewCustomError(apperrors.ErrTokenExpired, "token expired")
	errTokenInvalid   = apperrors.NewCustomError(apperrors.ErrTokenInvalid, "invalid token")
)

// AuthMiddleware enforces the route policy on every request
type AuthMiddleware struct {
	jwtService *auth.JWTService
	policy     *appauth.Policy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, policy *appauth.Policy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		policy:     policy,
	}
}

// Enforce must be installed with Use before routes are registered so that
// the matched route pattern is known when it runs.
func (m *AuthMiddleware) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, protected := m.policy.Lookup(c.Request.Method, c.FullPath()); !protected {
			c.Next()
			return
		}

		principal, err := m.authenticate(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (models.Principal, error) {
	rawRole := strings.ToLower(strings.TrimSpace(c.GetHeader(RoleHeader)))
	if rawRole == "" {
		return models.Principal{}, errMissingRole
	}

	token := strings.TrimSpace(c.GetHeader(rawRole + "-token"))
	if token == "" {
		if header := c.GetHeader("Authorization"); header != "" {
			token, _ = auth.ExtractBearerToken(header)
		}
	}
	if token == "" {
		return models.Principal{}, errMissingToken
	}

	role, err := models.ParseRole(rawRole)
	if err != nil || !m.policy.Allows(c.Request.Method, c.FullPath(), role) {
		return models.Principal{}, errRoleNotAllowed
	}

	claims, err := m.jwtService.ValidateToken(role, token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return models.Principal{}, errTokenExpired
		}
		return models.Principal{}, errTokenInvalid
	}

	return models.Principal{Role: role, ID: claims.ID, Email: claims.Email}, nil
}

// PrincipalFrom returns the caller stored by Enforce
func PrincipalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// SetPrincipal stores a caller on the context
func SetPrincipal(c *gin.Context, p models.Principal) {
	c.Set(principalKey, p)
}
