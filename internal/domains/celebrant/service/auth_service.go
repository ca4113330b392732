package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"giftlist-backend/internal/domains/celebrant"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/pkg/jwt"
	"giftlist-backend/pkg/logger"
)

type authService struct {
	repo   celebrant.Repository
	tokens *jwt.Manager
}

func NewAuthService(repo celebrant.Repository, tokens *jwt.Manager) celebrant.Service {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req celebrant.RegisterRequest) (*celebrant.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &celebrant.Celebrant{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// The unique constraint on email decides duplicates; a pre-check would
	// only race against concurrent registrations.
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	result, err := s.issueTokens(ctx, c)
	if err != nil {
		return nil, err
	}

	logger.Info("celebrant registered", map[string]interface{}{"email": c.Email})
	return result, nil
}

func (s *authService) Login(ctx context.Context, req celebrant.LoginRequest) (*celebrant.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	c, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, celebrant.ErrNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, c)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*celebrant.AuthResult, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrTokenExpired
	}

	celebrantID, err := uuid.Parse(claims.CelebrantID)
	if err != nil {
		return nil, apperror.ErrTokenExpired
	}

	c, err := s.repo.FindByID(ctx, celebrantID)
	if err != nil {
		if errors.Is(err, celebrant.ErrNotFound) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, err
	}

	// Rotation check: only the most recently issued refresh token is stored.
	// A rotated-out token is cryptographically valid but no longer matches.
	if c.RefreshToken == nil || *c.RefreshToken != refreshToken {
		return nil, apperror.ErrTokenExpired
	}

	return s.issueTokens(ctx, c)
}

func (s *authService) issueTokens(ctx context.Context, c *celebrant.Celebrant) (*celebrant.AuthResult, error) {
	accessToken, err := s.tokens.GenerateAccessToken(c.ID.String(), c.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(c.ID.String())
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, c.ID, refreshToken); err != nil {
		return nil, err
	}

	return &celebrant.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Celebrant:    c,
	}, nil
}
