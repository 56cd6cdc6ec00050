package http

import (
	"net/http"
	"testing"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/middleware"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(uc *MockAuthUseCase, secure bool) http.Handler {
	handler := NewAuthHandler(uc, CookieConfig{Secure: secure, AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/refresh", handler.Refresh)
	router.POST("/auth/logout", asUser(testUserID), handler.Logout)
	return router
}

func TestLogin_SetsCookies(t *testing.T) {
	uc := new(MockAuthUseCase)
	user := &entity.User{ID: testUserID, Email: "rahim@example.com", Name: "Rahim"}
	uc.On("Login", mock.Anything, "rahim@example.com", "correct-horse").
		Return(user, &usecase.AuthTokens{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"}, nil)

	w := perform(newAuthRouter(uc, true), http.MethodPost, "/auth/login", LoginRequest{Email: "rahim@example.com", Password: "correct-horse"})

	require.Equal(t, http.StatusOK, w.Code)
	cookies := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c
	}
	require.Contains(t, cookies, middleware.AccessTokenCookie)
	require.Contains(t, cookies, middleware.RefreshTokenCookie)

	access := cookies[middleware.AccessTokenCookie]
	assert.Equal(t, "access-jwt", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, 900, access.MaxAge)
	assert.Equal(t, 7*24*3600, cookies[middleware.RefreshTokenCookie].MaxAge)

	env := decode(t, w)
	assert.Equal(t, "Login successful", env.Message)
	assert.Contains(t, string(env.Data), `"user"`)
	assert.NotContains(t, w.Body.String(), "access-jwt")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, apperror.Unauthorized("Invalid email or password"))

	w := perform(newAuthRouter(uc, false), http.MethodPost, "/auth/login", LoginRequest{Email: "rahim@example.com", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decode(t, w)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestRegister_ValidationDetails(t *testing.T) {
	uc := new(MockAuthUseCase)

	w := perform(newAuthRouter(uc, false), http.MethodPost, "/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	fields := map[string]string{}
	for _, d := range env.Error.Details {
		fields[d.Field] = d.Issue
	}
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 8 characters", fields["password"])
	assert.Equal(t, "is required", fields["name"])
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_Created(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Register", mock.Anything, usecase.RegisterInput{Email: "new@example.com", Password: "long-enough", Name: "New"}).
		Return(&entity.User{ID: testUserID, Email: "new@example.com"}, &usecase.AuthTokens{AccessToken: "a", RefreshToken: "r"}, nil)

	w := perform(newAuthRouter(uc, false), http.MethodPost, "/auth/register", RegisterRequest{Email: "new@example.com", Password: "long-enough", Name: "New"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, w.Result().Cookies(), 2)
}

func TestRegister_MalformedBody(t *testing.T) {
	w := perform(newAuthRouter(new(MockAuthUseCase), false), http.MethodPost, "/auth/register", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decode(t, w).Error.Code)
}

func TestRefresh_MissingCookie(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Refresh", mock.Anything, "").Return(nil, nil, apperror.Unauthorized("Refresh token required"))

	w := perform(newAuthRouter(uc, false), http.MethodPost, "/auth/refresh", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsCookies(t *testing.T) {
	w := perform(newAuthRouter(new(MockAuthUseCase), false), http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Empty(t, c.Value)
		assert.True(t, c.MaxAge < 0)
	}
}
