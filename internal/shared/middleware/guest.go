package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/response"
	"giftlist-backend/pkg/jwt"
)

const (
	// GuestSessionCookie carries the signed guest session token.
	GuestSessionCookie = "guest_session"
	// RefreshTokenCookie carries the celebrant refresh credential.
	RefreshTokenCookie = "refresh_token"
)

// CookieConfig controls how session cookies are written.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// SetGuestSessionCookie writes the guest session cookie (httpOnly).
func SetGuestSessionCookie(c *gin.Context, cfg CookieConfig, token string, maxAge int) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(GuestSessionCookie, token, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

// SetRefreshTokenCookie writes the celebrant refresh cookie (httpOnly).
func SetRefreshTokenCookie(c *gin.Context, cfg CookieConfig, token string, maxAge int) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(RefreshTokenCookie, token, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func guestFromCookie(c *gin.Context, tokens *jwt.Manager) (GuestIdentity, bool) {
	raw, err := c.Cookie(GuestSessionCookie)
	if err != nil || raw == "" {
		return GuestIdentity{}, false
	}

	claims, err := tokens.ValidateGuestToken(raw)
	if err != nil {
		return GuestIdentity{}, false
	}

	accessID, err := uuid.Parse(claims.GuestAccessID)
	if err != nil {
		return GuestIdentity{}, false
	}

	return GuestIdentity{AccessID: accessID, Email: claims.Email}, true
}

// GuestMiddleware resolves the guest channel: a signed session cookie issued
// by the access-grant step. A missing or invalid session aborts with
// UNAUTHORIZED_GUEST, which the calling surface interprets as "show the
// access form". Synthetic identities never come out of this middleware, so
// routes behind it (claim/unclaim) are unreachable for celebrants.
func GuestMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := guestFromCookie(c, tokens)
		if !ok {
			response.Error(c, apperror.ErrUnauthorizedGuest)
			return
		}

		setGuest(c, identity)
		c.Next()
	}
}

// GuestOrOwnerMiddleware resolves the viewer of a public list page: a real
// guest session when present, otherwise a celebrant bearer token demoted to
// a synthetic guest identity so owners can preview their own page. Whether
// the synthetic viewer actually owns the requested list is checked against
// the list row by the service.
func GuestOrOwnerMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := guestFromCookie(c, tokens); ok {
			setGuest(c, identity)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := tokens.ValidateAccessToken(parts[1]); err == nil {
				if celebrantID, err := uuid.Parse(claims.CelebrantID); err == nil {
					setGuest(c, GuestIdentity{
						AccessID:    SyntheticGuestID(celebrantID),
						Email:       claims.Email,
						Synthetic:   true,
						CelebrantID: celebrantID,
					})
					c.Next()
					return
				}
			}
		}

		response.Error(c, apperror.ErrUnauthorizedGuest)
	}
}
