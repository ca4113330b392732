package giftlist

import (
	"time"

	"github.com/google/uuid"
)

// Item preference levels.
const (
	PreferenceLow    = "LOW"
	PreferenceMedium = "MEDIUM"
	PreferenceHigh   = "HIGH"
)

// Item claim states. Status lives on the item row and is flipped inside the
// same transaction that inserts or deletes the claim.
const (
	StatusAvailable = "AVAILABLE"
	StatusClaimed   = "CLAIMED"
)

// GiftList is a celebrant's published wishlist. Lists are only ever
// soft-deleted; the slug stays reserved.
type GiftList struct {
	ID          uuid.UUID
	CelebrantID uuid.UUID
	Name        string
	Slug        string
	ImageURL    *string
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GiftItem struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Name        string
	Description *string
	URL         *string
	Preference  string
	Status      string
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListWithItems pairs a list with its live (non-deleted) items.
type ListWithItems struct {
	List  GiftList
	Items []GiftItem
}

// ItemWithClaim carries the claiming guest's access id next to the item, for
// the public projection only. ClaimedBy is nil when the item is available.
type ItemWithClaim struct {
	Item      GiftItem
	ClaimedBy *uuid.UUID
}
