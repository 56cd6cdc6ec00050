package http

import (
	"net/http"
	"time"

	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/middleware"
	"sekor-bkc/pkg/response"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the auth cookies.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookies     CookieConfig
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookies CookieConfig, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookies:     cookies,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	NameBn    *string `json:"nameBn" binding:"omitempty,max=100"`
	Bio       *string `json:"bio" binding:"omitempty,max=1000"`
	BioBn     *string `json:"bioBn" binding:"omitempty,max=1000"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,max=500"`
}

type userPayload struct {
	User *entity.User `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a READER account and set the auth cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration details"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, tokens, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.CreatedWithMessage(c, "User registered successfully", userPayload{User: user})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password. Tokens are delivered as httpOnly cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, tokens, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OKWithMessage(c, "Login successful", userPayload{User: user})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotate both auth cookies using the refresh cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(middleware.RefreshTokenCookie)

	user, tokens, err := h.authUseCase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OKWithMessage(c, "Token refreshed", userPayload{User: user})
}

// Profile godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authUseCase.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, userPayload{User: user})
}

// UpdateProfile godoc
// @Summary      Update the current user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body UpdateProfileRequest true "Profile fields"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authUseCase.UpdateProfile(c.Request.Context(), currentUserID(c), usecase.UpdateProfileInput{
		Name:      req.Name,
		NameBn:    req.NameBn,
		Bio:       req.Bio,
		BioBn:     req.BioBn,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, userPayload{User: user})
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  response.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
	response.OKWithMessage(c, "Logout successful", nil)
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, tokens *usecase.AuthTokens) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, int(h.cookies.AccessTTL.Seconds()), "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, tokens.RefreshToken, int(h.cookies.RefreshTTL.Seconds()), "/", "", h.cookies.Secure, true)
}
