// Package complaint implements the complaint lifecycle state machine:
// submit, vote, assign, resolve, withdraw and single-level undo, together
// with the notification side effects of each transition.
package complaint

import (
	"fmt"

	"campuschars/backend/internal/config"
	"campuschars/backend/internal/models"
	"campuschars/backend/internal/priority"
	"campuschars/backend/internal/storage"
)

// Service handles the business logic for complaints. All validation happens
// before any write, so a rejected request never leaves partial state behind.
// After a complaint write succeeds, the follow-up notification write is not
// rolled back on failure (two independent writes, no cross-table
// transaction); the error is still returned to the caller.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateInput carries the submitter-provided fields of a new complaint.
// Zero values fall back to the model defaults on save.
type CreateInput struct {
	User        string
	StudentType string
	Category    string
	Severity    string
	Visibility  string
	Description string
}

// Create registers a new complaint with status Submitted and its priority
// computed from the supplied severity at zero votes, then notifies admins
// with a truncated description excerpt.
func (s *Service) Create(in CreateInput) (*models.Complaint, error) {
	c := &models.Complaint{
		Submitter:   in.User,
		StudentType: in.StudentType,
		Category:    in.Category,
		Description: in.Description,
		Severity:    in.Severity,
		Visibility:  in.Visibility,
		Status:      models.StatusSubmitted,
	}
	// An empty severity computes the same score the "Low" default would.
	c.PriorityScore, c.Priority = priority.Compute(in.Severity, 0)

	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	n := &models.Notification{
		Type:          models.NotificationNewComplaint,
		Message:       fmt.Sprintf("New complaint by %s: %s - %s", c.Submitter, c.Category, excerpt(c.Description)),
		RecipientRole: models.RoleAdmin,
		ComplaintID:   c.ID,
	}
	if err := s.Storage.RecordNotification(n); err != nil {
		return nil, err
	}
	return c, nil
}

// Vote increments the vote counter by one and recomputes the priority.
// There is no upper bound on votes.
func (s *Service) Vote(id string) (*models.Complaint, error) {
	c, err := s.Storage.IncrementVotes(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.PriorityScore, c.Priority = priority.Compute(c.Severity, c.Votes)
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign hands the complaint to a technician and notifies them. The
// technician identity must resolve to a technician-role user.
func (s *Service) Assign(id, technician string) (*models.Complaint, error) {
	if technician == "" {
		return nil, ErrInvalidInput
	}
	tech, err := s.Storage.FindTechnician(technician)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, ErrInvalidTechnician
	}
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.AssignedTo = technician
	c.Status = models.StatusAssigned
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	display := tech.Name
	if display == "" {
		display = technician
	}
	n := &models.Notification{
		Type:          models.NotificationAssigned,
		Message:       fmt.Sprintf("Complaint %s assigned to %s", c.ID, display),
		RecipientRole: models.RoleTechnician,
		RecipientName: technician,
		ComplaintID:   c.ID,
	}
	if err := s.Storage.RecordNotification(n); err != nil {
		return nil, err
	}
	return c, nil
}

// MarkResolved sets the complaint to Resolved and fans out notifications:
// always one to admins, plus one to the submitter when their identity is
// non-empty. A prior Assign is not required.
func (s *Service) MarkResolved(id string) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.Status = models.StatusResolved
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	adminNote := &models.Notification{
		Type:          models.NotificationResolved,
		Message:       fmt.Sprintf("Complaint %s resolved by %s", c.ID, c.AssignedTo),
		RecipientRole: models.RoleAdmin,
		ComplaintID:   c.ID,
	}
	if err := s.Storage.RecordNotification(adminNote); err != nil {
		return nil, err
	}

	if c.Submitter != "" {
		studentNote := &models.Notification{
			Type:          models.NotificationResolvedStudent,
			Message:       fmt.Sprintf("Your complaint %s has been resolved", c.ID),
			RecipientRole: models.RoleStudent,
			RecipientName: c.Submitter,
			ComplaintID:   c.ID,
		}
		if err := s.Storage.RecordNotification(studentNote); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ResolveTop resolves the Submitted complaint with the highest priority
// score, ties broken by the oldest creation time. Returns (nil, nil) when
// nothing is pending; that is an explicit empty result, not an error, and
// no record is mutated. Unlike MarkResolved this path emits no notification.
func (s *Service) ResolveTop() (*models.Complaint, error) {
	top, err := s.Storage.FindTopSubmitted()
	if err != nil {
		return nil, err
	}
	if top == nil {
		return nil, nil
	}

	top.Status = models.StatusResolved
	if err := s.Storage.SaveComplaint(top); err != nil {
		return nil, err
	}
	return top, nil
}

// Withdraw sets the complaint to Withdrawn and appends an entry to the undo
// log. Withdrawing an already-Withdrawn complaint appends another entry;
// there is deliberately no guard.
func (s *Service) Withdraw(id string) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.Status = models.StatusWithdrawn
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	a := &models.Action{Type: models.ActionWithdraw, ComplaintID: c.ID}
	if err := s.Storage.AppendAction(a); err != nil {
		return nil, err
	}
	return c, nil
}

// Undo reverses the most recent withdraw across the whole log: the complaint
// re-enters the active pool as Reopened and the consumed log entry is
// removed, so a second Undo targets the next most recent withdraw, if any.
func (s *Service) Undo() (*models.Complaint, error) {
	a, err := s.Storage.MostRecentAction(models.ActionWithdraw)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNothingToUndo
	}

	c, err := s.Storage.GetComplaintByID(a.ComplaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.Status = models.StatusReopened
	// Severity and votes are unchanged here; the recompute keeps the derived
	// fields mechanically in sync on every mutation path.
	c.PriorityScore, c.Priority = priority.Compute(c.Severity, c.Votes)
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	if err := s.Storage.RemoveAction(a); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns one complaint by ID.
func (s *Service) Get(id string) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// List returns the complaints visible to the caller, highest priority first.
func (s *Service) List(filter models.ComplaintFilter) ([]models.Complaint, error) {
	return s.Storage.FindComplaints(filter)
}

// excerpt truncates a description for notification messages.
func excerpt(description string) string {
	r := []rune(description)
	if len(r) <= config.DescriptionExcerptLimit {
		return description
	}
	return string(r[:config.DescriptionExcerptLimit])
}
