package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"giftlist-backend/internal/infrastructure/email"
	"giftlist-backend/internal/shared"
	"giftlist-backend/pkg/logger"
)

// ItemRemovedHandler delivers the email telling a guest their claimed item
// was removed.
type ItemRemovedHandler struct {
	emailService email.EmailService
}

func NewItemRemovedHandler(emailService email.EmailService) *ItemRemovedHandler {
	return &ItemRemovedHandler{emailService: emailService}
}

func (h *ItemRemovedHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ItemRemovedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// A malformed payload will never succeed; drop it instead of retrying.
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	err := h.emailService.SendItemRemovedNotification(ctx, email.ItemRemovedData{
		Email:    payload.Email,
		ItemName: payload.ItemName,
		ListName: payload.ListName,
		Language: payload.Language,
	})
	if err != nil {
		return err
	}

	logger.Info("removal notification sent", map[string]interface{}{
		"to":   payload.Email,
		"item": payload.ItemName,
	})
	return nil
}
