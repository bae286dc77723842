package models

import "time"

// Notification event types emitted by the complaint service.
const (
	NotificationNewComplaint    = "new_complaint"
	NotificationAssigned        = "assigned"
	NotificationResolved        = "resolved"
	NotificationResolvedStudent = "resolved_student"
)

// Notification is an immutable role-scoped alert generated by a complaint
// state transition. It is persisted first and then published on the Redis
// "notifications:events" channel for the live consumers (websocket hub,
// Telegram notifier).
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Type is one of the Notification* constants above.
	Type    string `gorm:"type:text;not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	// RecipientRole scopes the event to "admin", "technician" or "student".
	RecipientRole string `gorm:"type:text;not null;index" json:"recipientRole"`
	// RecipientName targets one individual; empty for role-wide events.
	RecipientName string `gorm:"type:text;index" json:"recipientName,omitempty"`
	// ComplaintID links back to the complaint the event is about.
	ComplaintID string    `gorm:"type:uuid" json:"complaintId,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
