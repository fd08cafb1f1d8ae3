package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pond/config"
	"pond/internal/delivery/http/response"
	"pond/internal/domain/service"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextKeyUserID  = "userID"
	ContextKeyEmail   = "userEmail"
	ContextKeyIsAdmin = "isAdmin"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer session token and stores the verified
// identity on the request context. Missing or bad tokens end the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Error(c, http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "invalid or expired token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate stores the identity when a valid bearer token is
// present and lets the request through anonymously otherwise. An invalid
// token is still rejected rather than silently downgraded.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "invalid or expired token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// UploadGuard picks the auth policy for the upload endpoint from config:
// required bearer auth when RequireUploadAuth is set, optional otherwise.
func (m *AuthMiddleware) UploadGuard() echo.MiddlewareFunc {
	if m.cfg.Auth != nil && m.cfg.Auth.RequireUploadAuth {
		return m.Authenticate
	}

	return m.OptionalAuthenticate
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyEmail, claims.Email)
	c.Set(ContextKeyIsAdmin, claims.IsAdmin)
}
