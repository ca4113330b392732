package service

import (
	"context"
	"errors"

	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/domains/guest"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/pkg/jwt"
	"giftlist-backend/pkg/logger"
)

type guestService struct {
	repo   guest.Repository
	lists  giftlist.Repository
	tokens *jwt.Manager
}

func NewGuestService(repo guest.Repository, lists giftlist.Repository, tokens *jwt.Manager) guest.Service {
	return &guestService{repo: repo, lists: lists, tokens: tokens}
}

func (s *guestService) RequestAccess(ctx context.Context, slug string, req guest.AccessRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperror.Validation(err.Error())
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	list, err := s.lists.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return "", apperror.ErrListNotFound
		}
		return "", err
	}

	access, err := s.repo.Upsert(ctx, list.ID, req.Email, language)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateGuestToken(access.ID.String(), access.Email)
	if err != nil {
		return "", err
	}

	logger.Debug("guest access granted", map[string]interface{}{
		"list": list.Slug,
	})
	return token, nil
}
