// Package email queues and delivers reward emails.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
	now        func() time.Time
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// QueueRewardEmail queues a congratulation email for a budget milestone.
func (s *Service) QueueRewardEmail(ctx context.Context, input adapter.QueueRewardEmailInput) error {
	subject, err := rewardSubject(input.Template, input.Data)
	if err != nil {
		return err
	}

	data := make(map[string]interface{}, len(input.Data)+2)
	for k, v := range input.Data {
		data[k] = v
	}
	data["user_name"] = input.UserName
	data["app_url"] = s.appBaseURL

	job := entity.NewEmailJob(input.Template, input.UserEmail, input.UserName, subject, data, s.now())
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue reward email",
			err,
		)
	}
	return nil
}

func rewardSubject(template entity.EmailTemplateType, data map[string]interface{}) (string, error) {
	switch template {
	case entity.TemplateGoalCompleted:
		return fmt.Sprintf("🎉 Bạn đã hoàn thành mục tiêu %q!", getString(data, "goal_name")), nil
	case entity.TemplatePetUnlocked:
		return fmt.Sprintf("🐾 Bạn vừa mở khóa %s!", getString(data, "pet_name")), nil
	default:
		return "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
