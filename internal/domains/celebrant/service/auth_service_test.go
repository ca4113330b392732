package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftlist-backend/internal/domains/celebrant"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/pkg/jwt"
)

type fakeCelebrantRepo struct {
	mu      sync.Mutex
	byEmail map[string]*celebrant.Celebrant
	byID    map[uuid.UUID]*celebrant.Celebrant
}

func newFakeCelebrantRepo() *fakeCelebrantRepo {
	return &fakeCelebrantRepo{
		byEmail: make(map[string]*celebrant.Celebrant),
		byID:    make(map[uuid.UUID]*celebrant.Celebrant),
	}
}

func (f *fakeCelebrantRepo) Create(_ context.Context, c *celebrant.Celebrant) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[c.Email]; exists {
		return uuid.Nil, apperror.ErrEmailAlreadyExists
	}

	stored := *c
	stored.ID = uuid.New()
	f.byEmail[stored.Email] = &stored
	f.byID[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeCelebrantRepo) FindByEmail(_ context.Context, email string) (*celebrant.Celebrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byEmail[email]
	if !ok {
		return nil, celebrant.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCelebrantRepo) FindByID(_ context.Context, id uuid.UUID) (*celebrant.Celebrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byID[id]
	if !ok {
		return nil, celebrant.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCelebrantRepo) UpdateRefreshToken(_ context.Context, id uuid.UUID, refreshToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byID[id]
	if !ok {
		return celebrant.ErrNotFound
	}
	c.RefreshToken = &refreshToken
	return nil
}

func newTestService(t *testing.T) (celebrant.Service, *fakeCelebrantRepo) {
	t.Helper()
	repo := newFakeCelebrantRepo()
	tokens := jwt.NewManager("celebrant-secret", "guest-secret",
		15*time.Minute, 7*24*time.Hour, 30*24*time.Hour)
	return NewAuthService(repo, tokens), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "anna@example.com", result.Celebrant.Email)

	stored := repo.byEmail["anna@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Sup3rsecret!", stored.PasswordHash)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, result.RefreshToken, *stored.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "An0therSecret!",
	})
	assert.ErrorIs(t, err, apperror.ErrEmailAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []string{
		"short1A",     // too short
		"alllowercase1", // no uppercase
		"NoDigitsHere",  // no number or special char
	}

	for _, password := range cases {
		_, err := svc.Register(context.Background(), celebrant.RegisterRequest{
			Email:    "anna@example.com",
			Password: password,
		})
		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr, "password %q should be rejected", password)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, celebrant.LoginRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, celebrant.LoginRequest{
		Email:    "anna@example.com",
		Password: "WrongPassw0rd!",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	// Unknown account fails with the same error as a wrong password.
	_, err = svc.Login(ctx, celebrant.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Sup3rsecret!",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, celebrant.RegisterRequest{
		Email:    "anna@example.com",
		Password: "Sup3rsecret!",
	})
	require.NoError(t, err)

	first := registered.RefreshToken

	refreshed, err := svc.Refresh(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	stored := repo.byEmail["anna@example.com"]
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, refreshed.RefreshToken, *stored.RefreshToken)

	// The rotated-out token is still a valid signature but no longer the
	// stored one, so replaying it must fail.
	_, err = svc.Refresh(ctx, first)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}
