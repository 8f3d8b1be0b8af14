package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ResendEmailSender delivers OTP and reset-link mail through the Resend HTTP
// API. The client timeout bounds every send so a slow provider cannot hang
// the request that triggered it.
type ResendEmailSender struct {
	APIKey     string
	HTTPClient *http.Client
	From       string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	return &ResendEmailSender{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		From:       from,
	}
}

func (s *ResendEmailSender) SendOTPEmail(ctx context.Context, email string, otp string) error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.New("email sender not configured")
	}
	subject := "Verify your email address"
	text := fmt.Sprintf("Your OTP for registration is: %s. It is valid for 10 minutes.", otp)
	html := fmt.Sprintf("<p>Your OTP for registration is: <strong>%s</strong></p><p>It is valid for 10 minutes.</p>", otp)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetEmail(ctx context.Context, email string, resetURL string) error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.New("email sender not configured")
	}
	subject := "Password Reset Token"
	text := fmt.Sprintf("You requested a password reset. Click this link to reset it: \n\n %s", resetURL)
	html := fmt.Sprintf("<p>You requested a password reset. Click to reset it:</p><p><a href=\"%s\">Reset Password</a></p>", resetURL)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	if s.HTTPClient == nil {
		s.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	payload := map[string]any{
		"from":    s.From,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
		"text":    text,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+s.APIKey)
	request.Header.Set("Content-Type", "application/json")
	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		return fmt.Errorf("resend email failed with status %d", response.StatusCode)
	}
	return nil
}
