package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftlist-backend/internal/config"
	"giftlist-backend/internal/domains/guest"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/internal/shared/response"
)

type GuestHandler struct {
	service guest.Service
	cookies middleware.CookieConfig
	maxAge  int
}

func NewGuestHandler(service guest.Service, cfg *config.Config) *GuestHandler {
	return &GuestHandler{
		service: service,
		cookies: middleware.CookieConfig{
			Domain:   cfg.Cookie.Domain,
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.Cookie.SameSite,
		},
		maxAge: int(cfg.Guest.TTL.Seconds()),
	}
}

// RequestAccess handles POST /lists/:slug/access. No authentication: anyone
// with the link and an email address can become a guest of that list.
func (h *GuestHandler) RequestAccess(c *gin.Context) {
	var req guest.AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	token, err := h.service.RequestAccess(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetGuestSessionCookie(c, h.cookies, token, h.maxAge)
	response.JSON(c, http.StatusOK, guest.AccessResponse{Success: true})
}
