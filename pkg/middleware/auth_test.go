package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sekor-bkc/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func whoAmI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey), "email": c.GetString(UserEmailKey)})
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "reader@sekor.test")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-123", body["user_id"])
	assert.Equal(t, "reader@sekor.test", body["email"])
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "reader@sekor.test")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	refresh, _ := jwtService.GenerateRefreshToken("user-123", "reader@sekor.test")

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"invalid format", "InvalidFormat token"},
		{"invalid token", "Bearer invalid-token"},
		{"empty bearer", "Bearer "},
		{"refresh token used as access", "Bearer " + refresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			router := setupTestRouter()
			router.Use(AuthMiddleware(jwtService))
			router.GET("/test", func(c *gin.Context) {
				handlerCalled = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, handlerCalled)
			assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-9", "nine@sekor.test")

	router := setupTestRouter()
	router.Use(OptionalAuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"anonymous", "", ""},
		{"garbage token stays anonymous", "Bearer not-a-jwt", ""},
		{"valid token", "Bearer " + token, "user-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["user_id"])
		})
	}
}
