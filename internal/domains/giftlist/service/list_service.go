package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/domains/guest"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/utils"
	"giftlist-backend/pkg/logger"
)

type listService struct {
	repo    giftlist.Repository
	guests  guest.Repository
	storage giftlist.ImageStorage
}

func NewListService(repo giftlist.Repository, guests guest.Repository, storage giftlist.ImageStorage) giftlist.ListService {
	return &listService{repo: repo, guests: guests, storage: storage}
}

func (s *listService) Create(ctx context.Context, celebrantID uuid.UUID, req giftlist.CreateListRequest) (*giftlist.ManageListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	slug := utils.GenerateSlug(req.Name)
	if slug == "" {
		slug = "list"
	}

	list := &giftlist.GiftList{
		CelebrantID: celebrantID,
		Name:        req.Name,
		Slug:        slug,
		ImageURL:    normalizeURL(req.ImageURL),
	}

	id, err := s.repo.CreateList(ctx, list)
	if errors.Is(err, giftlist.ErrSlugTaken) {
		// One retry with a random suffix. A second collision on 6 random hex
		// chars is not worth handling.
		suffix, serr := utils.RandomSlugSuffix()
		if serr != nil {
			return nil, serr
		}
		list.Slug = slug + "-" + suffix
		id, err = s.repo.CreateList(ctx, list)
	}
	if err != nil {
		return nil, err
	}
	list.ID = id

	logger.Info("list created", map[string]interface{}{"slug": list.Slug})

	resp := giftlist.ToManageListResponse(*list, nil)
	return &resp, nil
}

func (s *listService) GetOwned(ctx context.Context, celebrantID uuid.UUID) ([]giftlist.ManageListResponse, error) {
	lists, err := s.repo.FindOwned(ctx, celebrantID)
	if err != nil {
		return nil, err
	}

	responses := make([]giftlist.ManageListResponse, 0, len(lists))
	for _, l := range lists {
		responses = append(responses, giftlist.ToManageListResponse(l.List, l.Items))
	}
	return responses, nil
}

func (s *listService) GetManage(ctx context.Context, slug string, celebrantID uuid.UUID) (*giftlist.ManageListResponse, error) {
	list, err := s.repo.FindOwnedBySlug(ctx, slug, celebrantID)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return nil, apperror.ErrListNotFound
		}
		return nil, err
	}

	items, err := s.repo.FindItems(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	resp := giftlist.ToManageListResponse(*list, items)
	return &resp, nil
}

func (s *listService) Update(ctx context.Context, slug string, celebrantID uuid.UUID, req giftlist.UpdateListRequest) (*giftlist.ManageListResponse, error) {
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

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.ImageURL != nil {
		list.ImageURL = normalizeURL(req.ImageURL)
	}

	if err := s.repo.UpdateList(ctx, list); err != nil {
		return nil, err
	}

	items, err := s.repo.FindItems(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	resp := giftlist.ToManageListResponse(*list, items)
	return &resp, nil
}

func (s *listService) Delete(ctx context.Context, listID, celebrantID uuid.UUID) error {
	if err := s.repo.SoftDeleteList(ctx, listID, celebrantID); err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return apperror.ErrListNotFound
		}
		return err
	}

	// Stored images are unreferenced once the list is gone; cleanup failure
	// only leaks objects, so it is logged and ignored.
	if err := s.storage.DeleteByPrefix(ctx, "lists/"+listID.String()+"/"); err != nil {
		logger.Warn("failed to delete list images", map[string]interface{}{
			"list_id": listID.String(),
			"error":   err.Error(),
		})
	}

	return nil
}

func (s *listService) UploadImage(ctx context.Context, slug string, celebrantID uuid.UUID, data []byte, contentType string) (string, error) {
	list, err := s.repo.FindOwnedBySlug(ctx, slug, celebrantID)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return "", apperror.ErrListNotFound
		}
		return "", err
	}

	suffix, err := utils.RandomSlugSuffix()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("lists/%s/cover-%s", list.ID, suffix)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	list.ImageURL = &url
	if err := s.repo.UpdateList(ctx, list); err != nil {
		return "", err
	}

	return url, nil
}

func (s *listService) GetPublic(ctx context.Context, slug string, viewer giftlist.Viewer) (*giftlist.PublicListResponse, error) {
	list, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, giftlist.ErrNotFound) {
			return nil, apperror.ErrListNotFound
		}
		return nil, err
	}

	// Sessions are list-scoped. A synthetic viewer may only preview their own
	// list; a real guest session must have been granted on this list.
	if viewer.Synthetic {
		if list.CelebrantID != viewer.CelebrantID {
			return nil, apperror.ErrUnauthorizedGuest
		}
	} else {
		access, err := s.guests.FindByID(ctx, viewer.AccessID)
		if err != nil {
			if errors.Is(err, guest.ErrNotFound) {
				return nil, apperror.ErrUnauthorizedGuest
			}
			return nil, err
		}
		if access.ListID != list.ID {
			return nil, apperror.ErrUnauthorizedGuest
		}
	}

	items, err := s.repo.FindItemsWithClaims(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	resp := giftlist.ToPublicListResponse(*list, items, viewer.AccessID)
	return &resp, nil
}

// normalizeURL maps an empty string to nil so the column stays NULL rather
// than holding "".
func normalizeURL(url *string) *string {
	if url == nil || *url == "" {
		return nil
	}
	return url
}
