package middleware

import (
	"net/http"
	"strings"

	"hostelhub/internal/shared"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ClaimsKey   = "claims"
	UserIDKey   = "userID"
	RoleKey     = "role"
	HostelIDKey = "hostelID"
)

// TokenValidator is satisfied by service.AuthService.
type TokenValidator interface {
	ValidateToken(tokenString string) (*shared.AuthClaims, error)
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		SetClaims(c, *claims)
		c.Next()
	}
}

// SetClaims stores the caller identity on the request context.
func SetClaims(c *gin.Context, claims shared.AuthClaims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
	c.Set(RoleKey, claims.Role)
	c.Set(HostelIDKey, claims.HostelID)
}

// CurrentUser returns the identity set by AuthMiddleware.
func CurrentUser(c *gin.Context) (shared.AuthClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return shared.AuthClaims{}, false
	}
	claims, ok := v.(shared.AuthClaims)
	return claims, ok
}

// RequireRole checks if the user has one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get(RoleKey)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := roleInterface.(string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid role format"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":    "Insufficient permissions",
			"required": roles,
			"current":  userRole,
		})
		c.Abort()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("ADMIN")
}

// RequireStudent gates student-only routes
func RequireStudent() gin.HandlerFunc {
	return RequireRole("STUDENT")
}
