package email

import (
	"fmt"

	"github.com/diego410711/mbf-backend/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// ResendService maneja el envío de correos mediante Resend
type ResendService struct {
	client *resend.Client
	config *config.EmailConfig
	logger *logrus.Logger
}

// NewResendService crea una nueva instancia del servicio de correo
func NewResendService(cfg *config.EmailConfig, logger *logrus.Logger) *ResendService {
	return &ResendService{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
		logger: logger,
	}
}

// SendMail envía un correo de texto plano
func (s *ResendService) SendMail(to, subject, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.config.FromAddress,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"to":       to,
		"subject":  subject,
		"email_id": sent.Id,
	}).Info("Email sent successfully")

	return nil
}

// SendRecoveryCode envía el código de recuperación de contraseña
func (s *ResendService) SendRecoveryCode(to string, code int) error {
	return s.SendMail(
		to,
		"Código de recuperación de contraseña",
		fmt.Sprintf("Tu código de recuperación es: %d", code),
	)
}
