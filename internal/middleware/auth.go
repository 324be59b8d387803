package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/pkg/jwt"
	"github.com/modelmart/core/internal/pkg/response"
)

const ContextKeyUserID = "user_id"

// Auth returns a middleware that requires a valid bearer token and stores the
// authenticated actor id on the context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the actor id if a valid token is present, but does not
// block the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := validateToken(extractToken(c)); err == nil && claims.UserID != "" {
			c.Set(ContextKeyUserID, claims.UserID)
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated actor id from context.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// IsAuthenticated reports whether the request carries a valid identity.
func IsAuthenticated(c *gin.Context) bool { return CurrentUserID(c) != "" }

func validateToken(raw string) (*jwt.Claims, error) {
	return jwt.Parse(raw)
}

func extractToken(c *gin.Context) string {
	if token := NormalizeToken(c.GetHeader("Authorization")); token != "" {
		return token
	}
	if token := NormalizeToken(c.Query("token")); token != "" {
		return token
	}
	if raw, err := c.Cookie("token"); err == nil {
		return NormalizeToken(raw)
	}
	return ""
}

// NormalizeToken strips an optional "Bearer " prefix and whitespace.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
