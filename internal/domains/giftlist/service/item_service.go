package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/shared/apperror"
)

type itemService struct {
	repo giftlist.Repository
}

func NewItemService(repo giftlist.Repository) giftlist.ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, slug string, celebrantID uuid.UUID, req giftlist.CreateItemRequest) (*giftlist.ManageItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	list, err := s.repo.FindOwnedBySlug(ctx, slug, celebrantID)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return nil, apperror.ErrListNotFound
		}
		return nil, err
	}

	preference := req.Preference
	if preference == "" {
		preference = giftlist.PreferenceMedium
	}

	item := &giftlist.GiftItem{
		ListID:      list.ID,
		Name:        req.Name,
		Description: emptyToNil(req.Description),
		URL:         emptyToNil(req.URL),
		Preference:  preference,
		Status:      giftlist.StatusAvailable,
	}

	id, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	resp := giftlist.ToManageItemResponse(*item)
	return &resp, nil
}

func (s *itemService) Update(ctx context.Context, itemID, celebrantID uuid.UUID, req giftlist.UpdateItemRequest) (*giftlist.ManageItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	item, err := s.repo.FindOwnedItem(ctx, itemID, celebrantID)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return nil, apperror.ErrItemNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = emptyToNil(req.Description)
	}
	if req.URL != nil {
		item.URL = emptyToNil(req.URL)
	}
	if req.Preference != nil {
		item.Preference = *req.Preference
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	resp := giftlist.ToManageItemResponse(*item)
	return &resp, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
