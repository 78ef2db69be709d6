package middleware

import (
	"net/http"
	"strings"

	"atrium/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user id.
const ContextKeyUserID = "userID"

// ContextKeyRole is the echo context key carrying the authenticated role claim.
const ContextKeyRole = "role"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		subject, err := claims.GetSubject()
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		// The token's role claim is advisory for routing; the use case layer
		// re-resolves the account before every permission decision.
		role, _ := claims[ContextKeyRole].(string)

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRole, role)

		return next(c)
	}
}
