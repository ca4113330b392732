package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist-backend/internal/domains/claim"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/internal/shared/response"
)

type ClaimHandler struct {
	service claim.Service
}

func NewClaimHandler(service claim.Service) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// guestIdentity resolves a real guest session. Synthetic identities (a
// celebrant previewing their own page) are turned away here: owners can
// look, never claim.
func guestIdentity(c *gin.Context) (middleware.GuestIdentity, bool) {
	identity, ok := middleware.GuestFrom(c)
	if !ok || identity.Synthetic {
		response.Error(c, apperror.ErrUnauthorizedGuest)
		return middleware.GuestIdentity{}, false
	}
	return identity, true
}

// Claim handles POST /items/:id/claim.
func (h *ClaimHandler) Claim(c *gin.Context) {
	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrItemNotFound)
		return
	}

	if err := h.service.Claim(c.Request.Context(), itemID, identity.AccessID); err != nil {
		if errors.Is(err, apperror.ErrItemAlreadyClaimed) {
			middleware.ObserveClaimConflict()
		}
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "status": "CLAIMED"})
}

// Unclaim handles POST /items/:id/unclaim.
func (h *ClaimHandler) Unclaim(c *gin.Context) {
	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrItemNotFound)
		return
	}

	if err := h.service.Unclaim(c.Request.Context(), itemID, identity.AccessID); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "status": "AVAILABLE"})
}
