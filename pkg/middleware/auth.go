package middleware

import (
	"strings"

	"sekor-bkc/pkg/jwt"
	"sekor-bkc/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// AuthMiddleware rejects the request unless it carries a valid access token.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			response.Abort(c, 401, response.CodeUnauthorized, "Authentication required")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			response.Abort(c, 401, response.CodeUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller identity when a valid token is
// present and otherwise continues anonymously.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(UserEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// extractToken prefers the httpOnly cookie and falls back to a bearer header.
func extractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
