package models

import (
	"time"

	"campuschars/backend/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint lifecycle statuses. Resolved and Withdrawn are terminal,
// except that the most recent withdraw can be undone into Reopened.
const (
	StatusSubmitted = "Submitted"
	StatusAssigned  = "Assigned"
	StatusResolved  = "Resolved"
	StatusWithdrawn = "Withdrawn"
	StatusReopened  = "Reopened"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Complaint represents a submitted issue tracked through its lifecycle.
// PriorityScore and Priority are derived from Severity and Votes and are
// recomputed by the complaint service on every mutation of either field.
type Complaint struct {
	// ID is the unique identifier of the complaint (UUID).
	ID string `gorm:"primaryKey" json:"id"`
	// Submitter is the identity of the reporting user. Kept under the
	// legacy "user" JSON key the frontend expects.
	Submitter string `gorm:"column:submitter;type:text" json:"user"`
	// StudentType is a free-form tag ("Day", "Hostel", ...).
	StudentType string `gorm:"type:text" json:"studentType"`
	// Category is a free-form tag ("General", "Library", "Food", ...).
	Category    string `gorm:"type:text" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	// Severity is the submitter-declared urgency: "Low", "Medium" or "High".
	Severity string `gorm:"type:text" json:"severity"`
	// Votes is a non-negative community counter, incremented one at a time.
	Votes  int    `json:"votes"`
	Status string `gorm:"type:text;index" json:"status"`
	// PriorityScore is severity weight * 2 + votes.
	PriorityScore int `gorm:"index" json:"priorityScore"`
	// Priority is the bucketed label for PriorityScore.
	Priority   string `gorm:"type:text" json:"priority"`
	Visibility string `gorm:"type:text" json:"visibility"`
	// AssignedTo is the username of the assigned technician, empty until
	// an admin assigns the complaint.
	AssignedTo string `gorm:"type:text;index" json:"assignedTo"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BeforeCreate generates the UUID and applies the schema defaults the
// original Mongoose model declared for omitted fields.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Submitter == "" {
		c.Submitter = config.DefaultSubmitter
	}
	if c.StudentType == "" {
		c.StudentType = config.DefaultStudentType
	}
	if c.Category == "" {
		c.Category = config.DefaultCategory
	}
	if c.Severity == "" {
		c.Severity = config.DefaultSeverity
	}
	if c.Visibility == "" {
		c.Visibility = config.DefaultVisibility
	}
	if c.Status == "" {
		c.Status = StatusSubmitted
	}
	return
}

// ComplaintFilter narrows complaint listings to what the caller may see.
// Semantics: Admin sees everything; an identified Viewer sees all public
// complaints plus their own private ones; an anonymous caller sees only
// public complaints. AssignedTo further restricts any of the three.
type ComplaintFilter struct {
	Viewer     string
	Admin      bool
	AssignedTo string
}
