package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys for resolved identities. Values are set exactly once by the
// gateway middleware and never mutated afterwards.
const (
	contextKeyCelebrant = "celebrant_identity"
	contextKeyGuest     = "guest_identity"
)

// CelebrantIdentity is the typed identity of an authenticated list owner.
type CelebrantIdentity struct {
	ID    uuid.UUID
	Email string
}

// GuestIdentity is the typed identity of a guest session. Synthetic marks a
// celebrant previewing their own public page; a synthetic identity is never
// allowed to claim or unclaim.
type GuestIdentity struct {
	AccessID    uuid.UUID
	Email       string
	Synthetic   bool
	CelebrantID uuid.UUID // set only when Synthetic
}

func setCelebrant(c *gin.Context, id CelebrantIdentity) {
	c.Set(contextKeyCelebrant, id)
}

func setGuest(c *gin.Context, id GuestIdentity) {
	c.Set(contextKeyGuest, id)
}

// CelebrantFrom returns the celebrant identity resolved by AuthMiddleware.
func CelebrantFrom(c *gin.Context) (CelebrantIdentity, bool) {
	v, ok := c.Get(contextKeyCelebrant)
	if !ok {
		return CelebrantIdentity{}, false
	}
	id, ok := v.(CelebrantIdentity)
	return id, ok
}

// GuestFrom returns the guest identity resolved by GuestMiddleware or
// GuestOrOwnerMiddleware.
func GuestFrom(c *gin.Context) (GuestIdentity, bool) {
	v, ok := c.Get(contextKeyGuest)
	if !ok {
		return GuestIdentity{}, false
	}
	id, ok := v.(GuestIdentity)
	return id, ok
}

// SyntheticGuestID derives a stable pseudo guest-access id for a celebrant
// viewing their own public list. It can never collide with a real guest
// access id issued by the database.
func SyntheticGuestID(celebrantID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("giftlist:celebrant-as-guest:"+celebrantID.String()))
}
