package main

import (
	"github.com/hibiken/asynq"

	"giftlist-backend/internal/infrastructure/email"
	"giftlist-backend/internal/infrastructure/queue/handlers"
	"giftlist-backend/internal/shared"
)

// HandlerRegistry holds all task handlers.
type HandlerRegistry struct {
	itemRemoved *handlers.ItemRemovedHandler
}

func initializeHandlers(cfg *Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)

	return &HandlerRegistry{
		itemRemoved: handlers.NewItemRemovedHandler(emailSvc),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeNotifyItemRemoved, h.itemRemoved.ProcessTask)
}
