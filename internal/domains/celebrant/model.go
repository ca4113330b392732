package celebrant

import (
	"time"

	"github.com/google/uuid"
)

// Celebrant is a registered list owner. The RefreshToken column holds the
// one currently valid refresh credential; rotation overwrites it, so a
// replayed old token no longer matches.
type Celebrant struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
