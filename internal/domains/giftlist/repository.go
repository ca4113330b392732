package giftlist

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Lists
	CreateList(ctx context.Context, list *GiftList) (uuid.UUID, error)
	FindOwned(ctx context.Context, celebrantID uuid.UUID) ([]ListWithItems, error)
	// FindBySlug resolves any non-deleted list, regardless of owner. Used by
	// the guest access grant and the public view.
	FindBySlug(ctx context.Context, slug string) (*GiftList, error)
	FindOwnedBySlug(ctx context.Context, slug string, celebrantID uuid.UUID) (*GiftList, error)
	UpdateList(ctx context.Context, list *GiftList) error
	SoftDeleteList(ctx context.Context, listID, celebrantID uuid.UUID) error

	// Items
	CreateItem(ctx context.Context, item *GiftItem) (uuid.UUID, error)
	FindItems(ctx context.Context, listID uuid.UUID) ([]GiftItem, error)
	// FindItemsWithClaims includes each item's claiming guest access id; the
	// caller is responsible for never exposing it past the public projection.
	FindItemsWithClaims(ctx context.Context, listID uuid.UUID) ([]ItemWithClaim, error)
	// FindOwnedItem resolves an item through its list's owner. A foreign or
	// deleted item is indistinguishable from a missing one.
	FindOwnedItem(ctx context.Context, itemID, celebrantID uuid.UUID) (*GiftItem, error)
	UpdateItem(ctx context.Context, item *GiftItem) error
}
