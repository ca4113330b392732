package claim

import (
	"context"

	"github.com/google/uuid"
)

// RemovedItem is what RemoveItem captures before the item row disappears
// from view. The notification is rendered from these values alone.
type RemovedItem struct {
	WasClaimed bool
	GuestEmail string
	Language   string
	ItemName   string
	ListName   string
}

// Repository is the transactional claim engine. Each method is a single
// database transaction that locks the item row first, so two concurrent
// calls on the same item serialize: exactly one claim wins, and unclaim or
// removal never races a claim in flight.
type Repository interface {
	// ClaimItem atomically claims an available item for a guest. Failure
	// modes: item missing or deleted, guest access granted on a different
	// list, or item already claimed.
	ClaimItem(ctx context.Context, itemID, guestAccessID uuid.UUID) error

	// UnclaimItem releases the caller's own claim. Failure modes: item
	// missing, item not claimed, or claimed by a different guest.
	UnclaimItem(ctx context.Context, itemID, guestAccessID uuid.UUID) error

	// RemoveItem soft-deletes an owned item and reports whether it was
	// claimed, capturing what the removal notification needs.
	RemoveItem(ctx context.Context, itemID, celebrantID uuid.UUID) (*RemovedItem, error)
}
