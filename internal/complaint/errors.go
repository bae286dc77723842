package complaint

import "errors"

// Error kinds callers branch on with errors.Is. The API layer maps each to
// a distinct, stable HTTP status; storage failures pass through untouched.
var (
	ErrNotFound          = errors.New("complaint not found")
	ErrInvalidInput      = errors.New("technician is required")
	ErrInvalidTechnician = errors.New("unknown technician")
	ErrNothingToUndo     = errors.New("nothing to undo")
)
