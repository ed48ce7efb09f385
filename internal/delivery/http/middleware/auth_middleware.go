package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/token"
)

// AuthMiddleware verifies the access token and stores the caller's identity
// on the context. When roles are given the caller's role must match one of
// them.
func AuthMiddleware(jwtCfg config.JWTConfig, roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("accessToken"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "You are not authorized", nil, "")
			c.Abort()
			return
		}

		claims, err := token.Verify(tokenString, jwtCfg.AccessSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil, "")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if string(role) == claims.Role {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Error(c, http.StatusForbidden, "Forbidden", nil, "")
				c.Abort()
				return
			}
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
