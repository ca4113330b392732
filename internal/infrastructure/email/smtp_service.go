package email

import (
	"context"
	"fmt"
	"net/smtp"

	"giftlist-backend/pkg/logger"
)

// ItemRemovedData carries everything the removal notification needs. The
// claim row is already gone by the time this email is rendered, so all
// display values are captured before the delete commits.
type ItemRemovedData struct {
	Email    string
	ItemName string
	ListName string
	Language string // "en" or "it"
}

type EmailService interface {
	SendItemRemovedNotification(ctx context.Context, data ItemRemovedData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendItemRemovedNotification(ctx context.Context, data ItemRemovedData) error {
	var subject, body string

	if data.Language == "it" {
		subject = fmt.Sprintf("Oggetto rimosso dalla lista: %s", data.ListName)
		body = fmt.Sprintf(`Ciao,

ti informiamo che l'oggetto "%s" che avevi prenotato nella lista "%s" è stato rimosso dal festeggiato.

Saluti,
Il team di Gift List`, data.ItemName, data.ListName)
	} else {
		subject = fmt.Sprintf("Item removed from list: %s", data.ListName)
		body = fmt.Sprintf(`Hello,

we are informing you that the item "%s" you claimed in the list "%s" has been removed by the celebrant.

Best regards,
The Gift List team`, data.ItemName, data.ListName)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		logger.Warn("failed to send removal notification", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.Email,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
