package guest

import (
	"time"

	"github.com/google/uuid"
)

// GuestAccess records that an email address was granted access to one list.
// The pair (ListID, Email) is unique; repeat grants upsert the language.
// Access rows are never deleted, so claims keep a valid owner.
type GuestAccess struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Email     string
	Language  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
