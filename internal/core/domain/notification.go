package domain

import "time"

// NotificationSeverity classifies a notification for display ordering.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeverityUrgent  NotificationSeverity = "urgent"
)

// Notification is a dashboard message delivered to one recipient. Broadcasts
// fan out into one Notification per recipient before delivery.
type Notification struct {
	ID          string               `json:"id" bson:"_id,omitempty"`
	PGID        string               `json:"pg_id" bson:"pg_id"`
	RecipientID string               `json:"recipient_id" bson:"recipient_id"`
	Title       string               `json:"title" bson:"title"`
	Body        string               `json:"body" bson:"body"`
	Severity    NotificationSeverity `json:"severity" bson:"severity"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	ReadAt      *time.Time           `json:"read_at,omitempty" bson:"read_at,omitempty"`
}
