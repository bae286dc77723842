package storage

import (
	"context"
	"encoding/json"
	"errors"

	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NotificationChannel is the Redis Pub/Sub channel every recorded
// notification is published on for live consumers.
const NotificationChannel = "notifications:events"

type Storage interface {
	// Complaints
	SaveComplaint(c *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	FindComplaints(filter models.ComplaintFilter) ([]models.Complaint, error)
	FindTopSubmitted() (*models.Complaint, error)
	IncrementVotes(id string) (*models.Complaint, error)

	// Users
	GetUserByCredentials(username, password string) (*models.User, error)
	FindTechnician(username string) (*models.User, error)
	ListTechnicians() ([]models.User, error)

	// Notifications
	RecordNotification(n *models.Notification) error
	ListNotifications(role, name string) ([]models.Notification, error)

	// Undo log
	AppendAction(a *models.Action) error
	MostRecentAction(actionType string) (*models.Action, error)
	RemoveAction(a *models.Action) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
	Log   *logger.Logger
}

// NewStorageService Constructor. rdb may be nil for offline tooling
// (admin CLI, tests); publishing is skipped in that case.
func NewStorageService(db *gorm.DB, rdb *redis.Client, log *logger.Logger) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
		Log:   log.With("component", "storage"),
	}
}

// Migrate створює/оновлює всі таблиці домену.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Complaint{},
		&models.User{},
		&models.Notification{},
		&models.Action{},
	)
}

// SaveComplaint зберігає скаргу в PostgreSQL (upsert за первинним ключем).
func (s *Service) SaveComplaint(c *models.Complaint) error {
	if err := s.DB.Save(c).Error; err != nil {
		s.Log.Error("failed to save complaint", "id", c.ID, "err", err)
		return err
	}
	return nil
}

// GetComplaintByID повертає скаргу або nil, якщо її не знайдено.
func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var c models.Complaint
	err := s.DB.Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindComplaints lists complaints visible to the caller described by the
// filter, ordered by priority score descending and creation time descending.
func (s *Service) FindComplaints(filter models.ComplaintFilter) ([]models.Complaint, error) {
	q := s.DB.Model(&models.Complaint{})

	switch {
	case filter.Admin:
		// адмін бачить усе, без фільтра видимості
	case filter.Viewer != "":
		q = q.Where("visibility = ? OR submitter = ?", models.VisibilityPublic, filter.Viewer)
	default:
		q = q.Where("visibility = ?", models.VisibilityPublic)
	}

	if filter.AssignedTo != "" {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}

	var list []models.Complaint
	if err := q.Order("priority_score DESC, created_at DESC").Find(&list).Error; err != nil {
		s.Log.Error("failed to list complaints", "err", err)
		return nil, err
	}
	return list, nil
}

// FindTopSubmitted returns the Submitted complaint with the highest priority
// score, ties broken by the oldest creation time, or nil if none are pending.
func (s *Service) FindTopSubmitted() (*models.Complaint, error) {
	var c models.Complaint
	err := s.DB.Where("status = ?", models.StatusSubmitted).
		Order("priority_score DESC, created_at ASC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementVotes bumps the vote counter atomically in the database, so
// concurrent votes on the same complaint are never lost, and returns the
// reloaded row. Returns nil if the complaint does not exist.
func (s *Service) IncrementVotes(id string) (*models.Complaint, error) {
	res := s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetComplaintByID(id)
}

// GetUserByCredentials перевіряє логін/пароль (демо: plaintext, як в оригіналі).
func (s *Service) GetUserByCredentials(username, password string) (*models.User, error) {
	var u models.User
	err := s.DB.Where("username = ? AND password = ?", username, password).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindTechnician returns the technician-role user with the given username,
// or nil when the username does not resolve to a technician.
func (s *Service) FindTechnician(username string) (*models.User, error) {
	var u models.User
	err := s.DB.Where("username = ? AND role = ?", username, models.RoleTechnician).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) ListTechnicians() ([]models.User, error) {
	var list []models.User
	if err := s.DB.Where("role = ?", models.RoleTechnician).Order("username ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RecordNotification persists the event and then publishes it on the Redis
// channel. The publish is best-effort: live consumers are a side channel and
// the persisted row remains the source of truth.
func (s *Service) RecordNotification(n *models.Notification) error {
	if err := s.DB.Create(n).Error; err != nil {
		s.Log.Error("failed to record notification", "type", n.Type, "err", err)
		return err
	}

	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return nil
	}
	if err := s.Redis.Publish(s.Ctx, NotificationChannel, payload).Err(); err != nil {
		s.Log.Warn("failed to publish notification", "type", n.Type, "err", err)
	}
	return nil
}

// ListNotifications повертає сповіщення для ролі, найновіші першими.
// Для technician/student непорожнє name звужує вибірку до одного одержувача.
func (s *Service) ListNotifications(role, name string) ([]models.Notification, error) {
	q := s.DB.Where("recipient_role = ?", role)
	if name != "" && (role == models.RoleTechnician || role == models.RoleStudent) {
		q = q.Where("recipient_name = ?", name)
	}

	var list []models.Notification
	if err := q.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		s.Log.Error("failed to list notifications", "role", role, "err", err)
		return nil, err
	}
	return list, nil
}

func (s *Service) AppendAction(a *models.Action) error {
	return s.DB.Create(a).Error
}

// MostRecentAction returns the newest live entry of the given type across
// the whole log, or nil if the log is empty. Consumed entries are
// soft-deleted and therefore excluded.
func (s *Service) MostRecentAction(actionType string) (*models.Action, error) {
	var a models.Action
	err := s.DB.Where("type = ?", actionType).
		Order("created_at DESC, id DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// RemoveAction marks the consumed log entry as deleted.
func (s *Service) RemoveAction(a *models.Action) error {
	return s.DB.Delete(a).Error
}
