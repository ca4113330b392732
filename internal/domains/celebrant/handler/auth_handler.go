package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftlist-backend/internal/config"
	"giftlist-backend/internal/domains/celebrant"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/internal/shared/response"
)

type AuthHandler struct {
	service celebrant.Service
	cookies middleware.CookieConfig
	maxAge  int
}

func NewAuthHandler(service celebrant.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookies: middleware.CookieConfig{
			Domain:   cfg.Cookie.Domain,
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.Cookie.SameSite,
		},
		maxAge: int(cfg.Auth.RefreshTTL.Seconds()),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req celebrant.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetRefreshTokenCookie(c, h.cookies, result.RefreshToken, h.maxAge)
	response.JSON(c, http.StatusOK, result.ToAuthResponse())
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req celebrant.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetRefreshTokenCookie(c, h.cookies, result.RefreshToken, h.maxAge)
	response.JSON(c, http.StatusOK, result.ToAuthResponse())
}

// Refresh handles POST /auth/refresh. The refresh token comes from the
// httpOnly cookie, not the body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		response.Error(c, apperror.ErrTokenExpired)
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetRefreshTokenCookie(c, h.cookies, result.RefreshToken, h.maxAge)
	response.JSON(c, http.StatusOK, celebrant.RefreshResponse{Token: result.AccessToken})
}
