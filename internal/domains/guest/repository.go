package guest

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Upsert grants access for (listID, email), updating the language on a
	// repeat grant. The same guest always gets the same access id back.
	Upsert(ctx context.Context, listID uuid.UUID, email, language string) (*GuestAccess, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GuestAccess, error)
}
