package service

import (
	"context"

	"github.com/google/uuid"

	"giftlist-backend/internal/domains/claim"
	"giftlist-backend/internal/shared"
	"giftlist-backend/pkg/logger"
)

type claimService struct {
	repo     claim.Repository
	notifier claim.RemovalNotifier
}

func NewClaimService(repo claim.Repository, notifier claim.RemovalNotifier) claim.Service {
	return &claimService{repo: repo, notifier: notifier}
}

func (s *claimService) Claim(ctx context.Context, itemID, guestAccessID uuid.UUID) error {
	return s.repo.ClaimItem(ctx, itemID, guestAccessID)
}

func (s *claimService) Unclaim(ctx context.Context, itemID, guestAccessID uuid.UUID) error {
	return s.repo.UnclaimItem(ctx, itemID, guestAccessID)
}

func (s *claimService) RemoveItem(ctx context.Context, itemID, celebrantID uuid.UUID) error {
	removed, err := s.repo.RemoveItem(ctx, itemID, celebrantID)
	if err != nil {
		return err
	}

	if !removed.WasClaimed {
		return nil
	}

	// The delete has committed; the notification is best-effort on top.
	err = s.notifier.EnqueueItemRemoved(shared.ItemRemovedPayload{
		Email:    removed.GuestEmail,
		ItemName: removed.ItemName,
		ListName: removed.ListName,
		Language: removed.Language,
	})
	if err != nil {
		logger.Warn("failed to enqueue removal notification", map[string]interface{}{
			"item":  removed.ItemName,
			"error": err.Error(),
		})
	}

	return nil
}
