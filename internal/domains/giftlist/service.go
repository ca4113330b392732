package giftlist

import (
	"context"

	"github.com/google/uuid"
)

// Viewer identifies who is looking at a public list page. A synthetic viewer
// is a celebrant previewing their own page; they see the masked guest view
// and can never claim.
type Viewer struct {
	AccessID    uuid.UUID
	Synthetic   bool
	CelebrantID uuid.UUID
}

// ImageStorage is the slice of object storage the list service needs.
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type ListService interface {
	Create(ctx context.Context, celebrantID uuid.UUID, req CreateListRequest) (*ManageListResponse, error)
	GetOwned(ctx context.Context, celebrantID uuid.UUID) ([]ManageListResponse, error)
	GetManage(ctx context.Context, slug string, celebrantID uuid.UUID) (*ManageListResponse, error)
	Update(ctx context.Context, slug string, celebrantID uuid.UUID, req UpdateListRequest) (*ManageListResponse, error)
	Delete(ctx context.Context, listID, celebrantID uuid.UUID) error
	UploadImage(ctx context.Context, slug string, celebrantID uuid.UUID, data []byte, contentType string) (string, error)
	GetPublic(ctx context.Context, slug string, viewer Viewer) (*PublicListResponse, error)
}

type ItemService interface {
	Create(ctx context.Context, slug string, celebrantID uuid.UUID, req CreateItemRequest) (*ManageItemResponse, error)
	Update(ctx context.Context, itemID, celebrantID uuid.UUID, req UpdateItemRequest) (*ManageItemResponse, error)
}
