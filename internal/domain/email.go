package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ScheduleRegeneratedEmailData holds data for the schedule summary email.
type ScheduleRegeneratedEmailData struct {
	Email          string
	CourseTitle    string
	ScheduledHours float64
	DayCount       int
	FirstDay       time.Time
	LastDay        time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendScheduleRegenerated(ctx context.Context, data *ScheduleRegeneratedEmailData) error
}
