package complaint_test

import (
	"campuschars/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if c, ok := args.Get(0).(*models.Complaint); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) FindComplaints(filter models.ComplaintFilter) ([]models.Complaint, error) {
	args := m.Called(filter)
	if list, ok := args.Get(0).([]models.Complaint); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) FindTopSubmitted() (*models.Complaint, error) {
	args := m.Called()
	if c, ok := args.Get(0).(*models.Complaint); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) IncrementVotes(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if c, ok := args.Get(0).(*models.Complaint); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetUserByCredentials(username, password string) (*models.User, error) {
	args := m.Called(username, password)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) FindTechnician(username string) (*models.User, error) {
	args := m.Called(username)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) ListTechnicians() ([]models.User, error) {
	args := m.Called()
	if list, ok := args.Get(0).([]models.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) RecordNotification(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStorage) ListNotifications(role, name string) ([]models.Notification, error) {
	args := m.Called(role, name)
	if list, ok := args.Get(0).([]models.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) AppendAction(a *models.Action) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) MostRecentAction(actionType string) (*models.Action, error) {
	args := m.Called(actionType)
	if a, ok := args.Get(0).(*models.Action); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) RemoveAction(a *models.Action) error {
	args := m.Called(a)
	return args.Error(0)
}
