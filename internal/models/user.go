package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq" // потрібен для pq.StringArray
	"gorm.io/gorm"
)

// User roles.
const (
	RoleStudent    = "student"
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// User represents an account in the system: students submit complaints,
// admins triage them and technicians resolve them.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password is stored in plaintext. Demo only, as in the original system.
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:text;not null;index" json:"role"`
	Name     string `gorm:"type:text" json:"name"`
	Contact  string `gorm:"type:text" json:"contact"`
	// Skills is a tag list for technicians (e.g. "electrical", "plumbing").
	Skills pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
}

// BeforeCreate — GORM hook that generates a UUID if the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
