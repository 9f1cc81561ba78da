// Package notification fans budget events out to logs and reward emails.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
)

// MultiPublisher publishes to every child and joins their errors.
type MultiPublisher struct {
	publishers []adapter.EventPublisher
}

// NewMultiPublisher creates a publisher that fans out to publishers in order.
func NewMultiPublisher(publishers ...adapter.EventPublisher) *MultiPublisher {
	return &MultiPublisher{publishers: publishers}
}

// Publish delivers events to every child, even when an earlier one fails.
func (p *MultiPublisher) Publish(ctx context.Context, userID uuid.UUID, events []entity.Event) error {
	var errs []error
	for _, pub := range p.publishers {
		if err := pub.Publish(ctx, userID, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes each event as a structured log line.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a log publisher. A nil logger uses slog.Default.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs the events.
func (p *LogPublisher) Publish(ctx context.Context, userID uuid.UUID, events []entity.Event) error {
	for _, ev := range events {
		p.logger.InfoContext(ctx, "budget event",
			"user_id", userID,
			"kind", ev.Kind,
			"level", ev.Level,
			"message", ev.Message,
		)
	}
	return nil
}

// EmailPublisher queues reward emails for milestone events.
type EmailPublisher struct {
	users  adapter.UserRepository
	emails adapter.EmailService
}

// NewEmailPublisher creates a reward email publisher.
func NewEmailPublisher(users adapter.UserRepository, emails adapter.EmailService) *EmailPublisher {
	return &EmailPublisher{users: users, emails: emails}
}

// Publish queues one email per milestone event. Users who turned email
// notifications off are skipped.
func (p *EmailPublisher) Publish(ctx context.Context, userID uuid.UUID, events []entity.Event) error {
	var user *entity.User
	var errs []error

	for _, ev := range events {
		template, ok := entity.TemplateForEvent(ev.Kind)
		if !ok {
			continue
		}

		if user == nil {
			found, err := p.users.FindByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to find user for reward email: %w", err)
			}
			user = found
		}
		if !user.EmailNotifications || user.Email == "" {
			return nil
		}

		err := p.emails.QueueRewardEmail(ctx, adapter.QueueRewardEmailInput{
			UserEmail: user.Email,
			UserName:  user.Username,
			Template:  template,
			Data:      rewardData(ev),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// rewardData copies the string payload fields the templates use.
func rewardData(ev entity.Event) map[string]interface{} {
	keys := map[string]string{
		"goalName":     "goal_name",
		"goalIcon":     "goal_icon",
		"targetAmount": "target_amount",
		"petName":      "pet_name",
	}
	data := make(map[string]interface{})
	for from, to := range keys {
		if v, ok := ev.Payload[from].(string); ok {
			data[to] = v
		}
	}
	return data
}
