package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/internal/shared/response"
)

// Cover images are read fully into memory before upload.
const maxImageSize = 5 << 20 // 5 MiB

type ListHandler struct {
	service giftlist.ListService
}

func NewListHandler(service giftlist.ListService) *ListHandler {
	return &ListHandler{service: service}
}

// GetOwned handles GET /lists (celebrant dashboard).
func (h *ListHandler) GetOwned(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	lists, err := h.service.GetOwned(c.Request.Context(), identity.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, lists)
}

// Create handles POST /lists.
func (h *ListHandler) Create(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req giftlist.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	list, err := h.service.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// GetManage handles GET /lists/:slug/manage. The projection is masked: the
// owner never sees claim state.
func (h *ListHandler) GetManage(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	list, err := h.service.GetManage(c.Request.Context(), c.Param("slug"), identity.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// Update handles PATCH /lists/:slug/manage.
func (h *ListHandler) Update(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req giftlist.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	list, err := h.service.Update(c.Request.Context(), c.Param("slug"), identity.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// Delete handles DELETE /lists/:id.
func (h *ListHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrListNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), listID, identity.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UploadImage handles POST /lists/:slug/image (multipart field "image").
func (h *ListHandler) UploadImage(c *gin.Context) {
	identity, ok := middleware.CelebrantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperror.Validation("image file is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		response.Error(c, apperror.Validation("image exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.service.UploadImage(c.Request.Context(), c.Param("slug"), identity.ID, data, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"imageUrl": url})
}

// GetPublic handles GET /lists/:slug, behind GuestOrOwnerMiddleware.
func (h *ListHandler) GetPublic(c *gin.Context) {
	identity, ok := middleware.GuestFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedGuest)
		return
	}

	viewer := giftlist.Viewer{
		AccessID:    identity.AccessID,
		Synthetic:   identity.Synthetic,
		CelebrantID: identity.CelebrantID,
	}

	list, err := h.service.GetPublic(c.Request.Context(), c.Param("slug"), viewer)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list)
}
