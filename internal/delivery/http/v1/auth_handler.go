package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/token"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

// NewAuthHandler registers the auth routes. Registration, login and refresh
// are public; password changes require a valid session.
func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	auth := public.Group("/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.POST("/refresh-token", handler.RefreshToken)
	auth.POST("/logout", handler.Logout)

	protected.POST("/auth/change-password", handler.ChangePassword)
}

type registerRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  *string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates the user and its profile in one step.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      Log in
// @Description  Returns an access token; the refresh token is set as an httpOnly cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	response.Success(c, http.StatusOK, "Logged in successfully", result)
}

// RefreshToken godoc
// @Summary      Refresh the access token
// @Description  Reads the refresh token from the cookie (or request body) and mints a new access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		c.Error(apperror.Unauthorized("Refresh token is required"))
		return
	}

	accessToken, err := h.authUC.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Access token refreshed successfully", gin.H{
		"accessToken": accessToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the refresh token cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(refreshCookieName, "", -1, "/api/v1/auth", "", h.cfg.IsProduction(), true)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	ttl := token.ParseTTL(h.cfg.JWT.RefreshExpiresIn, 7*24*time.Hour)
	c.SetCookie(refreshCookieName, refreshToken, int(ttl.Seconds()), "/api/v1/auth", "", h.cfg.IsProduction(), true)
}
