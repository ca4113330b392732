package celebrant

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Celebrant) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*Celebrant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Celebrant, error)
	// UpdateRefreshToken overwrites the stored refresh credential. There is
	// at most one valid refresh token per account at any time.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error
}
