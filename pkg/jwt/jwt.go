package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim. A token of one type never
// validates as another.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeGuest   = "guest"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// CelebrantClaims is the payload of celebrant access and refresh tokens.
type CelebrantClaims struct {
	CelebrantID string `json:"celebrant_id"`
	Email       string `json:"email,omitempty"`
	Type        string `json:"type"`
	jwt.RegisteredClaims
}

// GuestClaims is the payload of guest session tokens. It binds a guest
// access record, not a password-backed account.
type GuestClaims struct {
	GuestAccessID string `json:"guest_access_id"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies the two credential channels. The celebrant and
// guest channels use separate secrets so there is no shared trust boundary
// between them.
type Manager struct {
	celebrantSecret []byte
	guestSecret     []byte
	accessTTL       time.Duration
	refreshTTL      time.Duration
	guestTTL        time.Duration
}

func NewManager(celebrantSecret, guestSecret string, accessTTL, refreshTTL, guestTTL time.Duration) *Manager {
	return &Manager{
		celebrantSecret: []byte(celebrantSecret),
		guestSecret:     []byte(guestSecret),
		accessTTL:       accessTTL,
		refreshTTL:      refreshTTL,
		guestTTL:        guestTTL,
	}
}

// GenerateAccessToken issues the short-lived bearer token a celebrant sends
// in the Authorization header.
func (m *Manager) GenerateAccessToken(celebrantID, email string) (string, error) {
	claims := CelebrantClaims{
		CelebrantID: celebrantID,
		Email:       email,
		Type:        TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.celebrantSecret)
}

// GenerateRefreshToken issues the long-lived refresh credential. The caller
// is responsible for persisting it on the celebrant row; only the stored
// value authorizes a refresh.
func (m *Manager) GenerateRefreshToken(celebrantID string) (string, error) {
	claims := CelebrantClaims{
		CelebrantID: celebrantID,
		Type:        TypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti makes every issued token distinct, so rotation always
			// replaces the stored value even within the same second.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.celebrantSecret)
}

// GenerateGuestToken issues the opaque session credential handed back after
// a guest access grant.
func (m *Manager) GenerateGuestToken(guestAccessID, email string) (string, error) {
	claims := GuestClaims{
		GuestAccessID: guestAccessID,
		Email:         email,
		Type:          TypeGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.guestTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.guestSecret)
}

func (m *Manager) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ValidateAccessToken verifies a celebrant bearer token.
func (m *Manager) ValidateAccessToken(tokenString string) (*CelebrantClaims, error) {
	claims := &CelebrantClaims{}
	if err := m.parse(tokenString, claims, m.celebrantSecret); err != nil {
		return nil, err
	}
	if claims.Type != TypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken verifies a refresh token signature and expiry. It does
// NOT check the server-stored value; rotation is enforced by the auth
// service against the celebrant row.
func (m *Manager) ValidateRefreshToken(tokenString string) (*CelebrantClaims, error) {
	claims := &CelebrantClaims{}
	if err := m.parse(tokenString, claims, m.celebrantSecret); err != nil {
		return nil, err
	}
	if claims.Type != TypeRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateGuestToken verifies a guest session token.
func (m *Manager) ValidateGuestToken(tokenString string) (*GuestClaims, error) {
	claims := &GuestClaims{}
	if err := m.parse(tokenString, claims, m.guestSecret); err != nil {
		return nil, err
	}
	if claims.Type != TypeGuest {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
