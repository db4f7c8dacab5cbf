package services

import (
	"bonsaigallery/internal/config"
	"bonsaigallery/internal/logger"
	helpers "bonsaigallery/internal/utils/helpers"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailService отправляет транзакционные письма через Resend API.
// Без ключа API работает в dev-режиме: ссылка сброса попадает в лог,
// отправки нет и ошибки нет.
type EmailService struct {
	apiKey string
	from   string
	client *http.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.EmailFrom,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *EmailService) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	if s.apiKey == "" {
		logger.Log.Info("RESEND_API_KEY не задан — письмо сброса пароля только в лог (dev)",
			zap.String("reset_url", resetLink),
		)
		return nil
	}

	return s.send(ctx, to, "Сброс пароля администратора галереи бонсай", helpers.BuildPasswordResetHTML(resetLink))
}

func (s *EmailService) send(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: статус %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
