package models

import "gorm.io/gorm"

// ActionWithdraw is currently the only reversible action type.
const ActionWithdraw = "withdraw"

// Action is one entry in the append-only undo log. Undo always consumes the
// most recently created entry of a given type across the whole log, so the
// log acts as a single global undo slot rather than a per-complaint stack.
// The embedded gorm.Model provides ID, CreatedAt and the soft-delete marker
// used when an entry is consumed.
type Action struct {
	gorm.Model

	Type        string `gorm:"type:text;not null;index"`
	ComplaintID string `gorm:"type:uuid;not null"`
}
