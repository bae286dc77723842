package storage_test

import (
	"fmt"
	"testing"
	"time"

	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/models"
	"campuschars/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService opens a per-test in-memory SQLite database and migrates the
// schema. The shared-cache DSN keeps every connection of the pool on the
// same database.
func newTestService(t *testing.T) *storage.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	s := storage.NewStorageService(db, nil, log)
	require.NoError(t, s.Migrate())
	return s
}

func mustSave(t *testing.T, s *storage.Service, c *models.Complaint) *models.Complaint {
	t.Helper()
	require.NoError(t, s.SaveComplaint(c))
	return c
}

// TestVisibilityFilter covers the three caller modes: anonymous sees only
// public complaints, an identified user additionally sees their own private
// ones, and admin mode sees everything.
func TestVisibilityFilter(t *testing.T) {
	s := newTestService(t)

	alicePrivate := mustSave(t, s, &models.Complaint{Submitter: "Alice", Visibility: models.VisibilityPrivate})
	bobPublic := mustSave(t, s, &models.Complaint{Submitter: "Bob", Visibility: models.VisibilityPublic})
	carolPrivate := mustSave(t, s, &models.Complaint{Submitter: "Carol", Visibility: models.VisibilityPrivate})

	anon, err := s.FindComplaints(models.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.Equal(t, bobPublic.ID, anon[0].ID)

	asAlice, err := s.FindComplaints(models.ComplaintFilter{Viewer: "Alice"})
	require.NoError(t, err)
	ids := []string{asAlice[0].ID, asAlice[1].ID}
	assert.Len(t, asAlice, 2)
	assert.Contains(t, ids, alicePrivate.ID)
	assert.Contains(t, ids, bobPublic.ID)

	asDave, err := s.FindComplaints(models.ComplaintFilter{Viewer: "Dave"})
	require.NoError(t, err)
	require.Len(t, asDave, 1)
	assert.Equal(t, bobPublic.ID, asDave[0].ID)

	asAdmin, err := s.FindComplaints(models.ComplaintFilter{Admin: true})
	require.NoError(t, err)
	require.Len(t, asAdmin, 3)
	adminIDs := []string{asAdmin[0].ID, asAdmin[1].ID, asAdmin[2].ID}
	assert.Contains(t, adminIDs, carolPrivate.ID)
}

// TestAssignedToFilter verifies the technician filter further restricts an
// admin listing.
func TestAssignedToFilter(t *testing.T) {
	s := newTestService(t)

	mine := mustSave(t, s, &models.Complaint{AssignedTo: "tech-a", Status: models.StatusAssigned})
	mustSave(t, s, &models.Complaint{AssignedTo: "tech-b", Status: models.StatusAssigned})
	mustSave(t, s, &models.Complaint{Status: models.StatusSubmitted})

	list, err := s.FindComplaints(models.ComplaintFilter{Admin: true, AssignedTo: "tech-a"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

// TestListingOrder verifies listings come back highest priority score first.
func TestListingOrder(t *testing.T) {
	s := newTestService(t)

	mustSave(t, s, &models.Complaint{PriorityScore: 2})
	mustSave(t, s, &models.Complaint{PriorityScore: 9})
	mustSave(t, s, &models.Complaint{PriorityScore: 5})

	list, err := s.FindComplaints(models.ComplaintFilter{Admin: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{9, 5, 2}, []int{list[0].PriorityScore, list[1].PriorityScore, list[2].PriorityScore})
}

// TestFindTopSubmitted verifies the selection rule: highest score wins, and
// among equal scores the oldest complaint wins. Only Submitted complaints
// are considered.
func TestFindTopSubmitted(t *testing.T) {
	s := newTestService(t)

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	older := mustSave(t, s, &models.Complaint{Status: models.StatusSubmitted, PriorityScore: 5, CreatedAt: t1})
	mustSave(t, s, &models.Complaint{Status: models.StatusSubmitted, PriorityScore: 5, CreatedAt: t2})
	highest := mustSave(t, s, &models.Complaint{Status: models.StatusSubmitted, PriorityScore: 9, CreatedAt: t3})
	// Non-Submitted complaints never win, whatever their score.
	mustSave(t, s, &models.Complaint{Status: models.StatusResolved, PriorityScore: 100, CreatedAt: t1})

	top, err := s.FindTopSubmitted()
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, highest.ID, top.ID)

	top.Status = models.StatusResolved
	require.NoError(t, s.SaveComplaint(top))

	// Tie at score 5: the oldest wins.
	top, err = s.FindTopSubmitted()
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, older.ID, top.ID)
}

// TestFindTopSubmitted_Empty verifies the nil result when nothing is pending.
func TestFindTopSubmitted_Empty(t *testing.T) {
	s := newTestService(t)

	top, err := s.FindTopSubmitted()
	require.NoError(t, err)
	assert.Nil(t, top)
}

// TestIncrementVotes verifies the in-database increment and the nil result
// for a missing complaint.
func TestIncrementVotes(t *testing.T) {
	s := newTestService(t)

	c := mustSave(t, s, &models.Complaint{Severity: "Low"})

	for want := 1; want <= 3; want++ {
		got, err := s.IncrementVotes(c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, got.Votes)
	}

	missing, err := s.IncrementVotes("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// TestActionLog walks the undo log contract: the newest live entry wins,
// consuming it surfaces the next most recent, and an empty log yields nil.
func TestActionLog(t *testing.T) {
	s := newTestService(t)

	first := &models.Action{Type: models.ActionWithdraw, ComplaintID: "c1"}
	require.NoError(t, s.AppendAction(first))
	second := &models.Action{Type: models.ActionWithdraw, ComplaintID: "c2"}
	require.NoError(t, s.AppendAction(second))

	got, err := s.MostRecentAction(models.ActionWithdraw)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c2", got.ComplaintID)

	require.NoError(t, s.RemoveAction(got))

	got, err = s.MostRecentAction(models.ActionWithdraw)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ComplaintID)

	require.NoError(t, s.RemoveAction(got))

	got, err = s.MostRecentAction(models.ActionWithdraw)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestNotifications verifies recipient scoping and newest-first ordering.
func TestNotifications(t *testing.T) {
	s := newTestService(t)

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordNotification(&models.Notification{
		Type: models.NotificationNewComplaint, Message: "first", RecipientRole: models.RoleAdmin, CreatedAt: t1}))
	require.NoError(t, s.RecordNotification(&models.Notification{
		Type: models.NotificationResolved, Message: "second", RecipientRole: models.RoleAdmin, CreatedAt: t1.Add(time.Minute)}))
	require.NoError(t, s.RecordNotification(&models.Notification{
		Type: models.NotificationAssigned, Message: "for tech-a", RecipientRole: models.RoleTechnician, RecipientName: "tech-a", CreatedAt: t1}))
	require.NoError(t, s.RecordNotification(&models.Notification{
		Type: models.NotificationAssigned, Message: "for tech-b", RecipientRole: models.RoleTechnician, RecipientName: "tech-b", CreatedAt: t1}))

	adminList, err := s.ListNotifications(models.RoleAdmin, "")
	require.NoError(t, err)
	require.Len(t, adminList, 2)
	assert.Equal(t, "second", adminList[0].Message, "newest first")
	assert.Equal(t, "first", adminList[1].Message)

	techList, err := s.ListNotifications(models.RoleTechnician, "tech-a")
	require.NoError(t, err)
	require.Len(t, techList, 1)
	assert.Equal(t, "for tech-a", techList[0].Message)
}

// TestSeedUsers verifies the default accounts are created once and that the
// technician lookup honors the role.
func TestSeedUsers(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SeedUsers())
	require.NoError(t, s.SeedUsers()) // idempotent

	techs, err := s.ListTechnicians()
	require.NoError(t, err)
	assert.Len(t, techs, 2)

	tech, err := s.FindTechnician("tech-a")
	require.NoError(t, err)
	require.NotNil(t, tech)
	assert.Equal(t, models.RoleTechnician, tech.Role)

	// Non-technician usernames do not resolve.
	tech, err = s.FindTechnician("admin")
	require.NoError(t, err)
	assert.Nil(t, tech)

	u, err := s.GetUserByCredentials("student1", "student")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, models.RoleStudent, u.Role)

	u, err = s.GetUserByCredentials("student1", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

// TestGetComplaintByID verifies the nil-without-error contract for missing
// rows and that defaults are applied on create.
func TestGetComplaintByID(t *testing.T) {
	s := newTestService(t)

	c := mustSave(t, s, &models.Complaint{})

	got, err := s.GetComplaintByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Anonymous", got.Submitter)
	assert.Equal(t, "Day", got.StudentType)
	assert.Equal(t, "General", got.Category)
	assert.Equal(t, models.StatusSubmitted, got.Status)

	got, err = s.GetComplaintByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
