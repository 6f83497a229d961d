package service

import (
	"context"
	"errors"
)

// SupportService forwards contact-form messages to the support inbox.
type SupportService struct {
	emailSender EmailSender
}

func NewSupportService(emailSender EmailSender) *SupportService {
	return &SupportService{emailSender: emailSender}
}

func (s *SupportService) Forward(ctx context.Context, fromEmail, message string) error {
	if s.emailSender == nil {
		return errors.New("email sender not configured")
	}
	return s.emailSender.SendSupportMessage(ctx, fromEmail, message)
}
