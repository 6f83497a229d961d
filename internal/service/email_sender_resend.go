package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers transactional email through resend.com. An
// unconfigured sender fails loudly rather than silently dropping mail.
type ResendEmailSender struct {
	Client       *resend.Client
	From         string
	AppBaseURL   string
	SupportInbox string
	VerifyPath   string
}

func NewResendEmailSender(apiKey, from, appBaseURL, supportInbox string) *ResendEmailSender {
	sender := &ResendEmailSender{
		From:         from,
		AppBaseURL:   strings.TrimRight(appBaseURL, "/"),
		SupportInbox: supportInbox,
		VerifyPath:   "/verify-email",
	}
	if strings.TrimSpace(apiKey) != "" {
		sender.Client = resend.NewClient(apiKey)
	}
	return sender
}

func (s *ResendEmailSender) SendVerificationEmail(ctx context.Context, name, email, token string) error {
	link := fmt.Sprintf("%s%s?token=%s", s.AppBaseURL, s.VerifyPath, token)
	subject := "Verify your email"
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>Verify your email by clicking <a href=\"%s\">here</a>.</p>",
		name, link,
	)
	return s.send(email, subject, html)
}

func (s *ResendEmailSender) SendPasswordResetOTP(ctx context.Context, name, email, otp string) error {
	subject := "Your OTP for password reset"
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your OTP for password reset is: <strong>%s</strong></p><p>It will expire in 10 minutes.</p>",
		name, otp,
	)
	return s.send(email, subject, html)
}

func (s *ResendEmailSender) SendSupportMessage(ctx context.Context, fromEmail, message string) error {
	if strings.TrimSpace(s.SupportInbox) == "" {
		return errors.New("support inbox not configured")
	}
	subject := fmt.Sprintf("New Support Message from %s", fromEmail)
	html := fmt.Sprintf(
		"<h3>New Support Message</h3><p><strong>From:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		fromEmail, message,
	)
	return s.send(s.SupportInbox, subject, html)
}

func (s *ResendEmailSender) send(to, subject, html string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	_, err := s.Client.Emails.Send(&resend.SendEmailRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}
