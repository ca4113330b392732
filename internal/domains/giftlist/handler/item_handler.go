package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist-backend/internal/domains/claim"
	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/internal/shared/response"
)

type ItemHandler struct {
	service giftlist.ItemService
	claims  claim.Service
}

// NewItemHandler wires both services: CRUD goes to the item service, while
// removal routes through the claim engine so the notification fires.
func NewItemHandler(service giftlist.ItemService, claims claim.Service) *ItemHandler {
	return &ItemHandler{service: service, claims: claims}
}

// Create handles POST /lists/:slug/items.
func (h *ItemHandler) Create(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req giftlist.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	item, err := h.service.Create(c.Request.Context(), c.Param("slug"), identity.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, item)
}

// Update handles PATCH /items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrItemNotFound)
		return
	}

	var req giftlist.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	item, err := h.service.Update(c.Request.Context(), itemID, identity.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, item)
}

// Delete handles DELETE /items/:id. Removal runs through the claim engine;
// the response carries no hint of whether anyone had claimed the item.
func (h *ItemHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrItemNotFound)
		return
	}

	if err := h.claims.RemoveItem(c.Request.Context(), itemID, identity.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
