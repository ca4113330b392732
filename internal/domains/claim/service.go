package claim

import (
	"context"

	"github.com/google/uuid"

	"giftlist-backend/internal/shared"
)

// RemovalNotifier is the slice of the queue client this domain needs.
type RemovalNotifier interface {
	EnqueueItemRemoved(payload shared.ItemRemovedPayload) error
}

type Service interface {
	Claim(ctx context.Context, itemID, guestAccessID uuid.UUID) error
	Unclaim(ctx context.Context, itemID, guestAccessID uuid.UUID) error
	// RemoveItem soft-deletes a celebrant's item. If the item was claimed, a
	// notification to the claiming guest is enqueued after the delete
	// commits; enqueue failure never fails the removal.
	RemoveItem(ctx context.Context, itemID, celebrantID uuid.UUID) error
}
