// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/six-jars/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueRewardEmailInput describes a reward email for a budget milestone.
type QueueRewardEmailInput struct {
	UserEmail string
	UserName  string
	Template  entity.EmailTemplateType
	Data      map[string]interface{}
}

// EmailService queues reward emails for asynchronous delivery.
type EmailService interface {
	QueueRewardEmail(ctx context.Context, input QueueRewardEmailInput) error
}
