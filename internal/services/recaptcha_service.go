package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/diego410711/mbf-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// RecaptchaService verifica tokens de reCAPTCHA contra el endpoint de Google
type RecaptchaService struct {
	config *config.RecaptchaConfig
	logger *logrus.Logger
	client *http.Client
}

// NewRecaptchaService crea una nueva instancia del servicio
func NewRecaptchaService(cfg *config.RecaptchaConfig, logger *logrus.Logger) *RecaptchaService {
	return &RecaptchaService{
		config: cfg,
		logger: logger,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type recaptchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify valida un token contra siteverify y retorna si es legítimo
func (s *RecaptchaService) Verify(token string) (bool, error) {
	resp, err := s.client.PostForm(s.config.VerifyURL, url.Values{
		"secret":   {s.config.SecretKey},
		"response": {token},
	})
	if err != nil {
		return false, fmt.Errorf("error calling recaptcha verify: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("error decoding recaptcha response: %w", err)
	}

	if !result.Success {
		s.logger.WithField("error_codes", result.ErrorCodes).Warn("Recaptcha verification failed")
	}

	return result.Success, nil
}
