package services

import (
	"context"
	"fmt"
	"log/slog"

	"courseplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendScheduleRegenerated sends the schedule summary using the "schedule_regenerated" template.
func (s *emailService) SendScheduleRegenerated(ctx context.Context, data *domain.ScheduleRegeneratedEmailData) error {
	if data == nil {
		return fmt.Errorf("schedule regenerated email data is nil")
	}
	if data.Email == "" {
		return fmt.Errorf("%w: recipient is required", domain.ErrInvalidInput)
	}
	subject, htmlBody, textBody, err := s.renderer.Render("schedule_regenerated", data)
	if err != nil {
		return fmt.Errorf("failed to render schedule_regenerated template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send schedule regenerated email: %w", err)
	}
	s.logger.InfoContext(ctx, "schedule summary sent", "to", data.Email, "course", data.CourseTitle)
	return nil
}
