package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YibestBelay/shegaCafe/entity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// enforces them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		userID, email, role, ok := parseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("email", email)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if entity.NormalizeRole(role) == entity.NormalizeRole(r) {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// OptionalAuth attaches session claims when a valid token is present and
// lets anonymous callers through as guests. Order creation and menu reads
// accept both.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if userID, email, role, ok := parseToken(strings.TrimPrefix(h, "Bearer "), secret); ok {
				c.Set("userId", userID)
				c.Set("email", email)
				c.Set("role", role)
			}
		}
		c.Next()
	}
}

func parseToken(tokenStr, secret string) (uint, string, string, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", "", false
	}

	var role, email string
	if v, ok := claims["role"].(string); ok {
		role = v
	}
	if v, ok := claims["email"].(string); ok {
		email = v
	}
	var userID uint
	switch v := claims["userId"].(type) {
	case float64:
		userID = uint(v)
	case int:
		userID = uint(v)
	case int64:
		userID = uint(v)
	case uint:
		userID = v
	}
	return userID, email, role, true
}
