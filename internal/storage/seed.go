package storage

import (
	"campuschars/backend/internal/models"

	"github.com/lib/pq"
)

// SeedUsers створює стандартних користувачів (admin, два техніки, студент),
// якщо таблиця users ще порожня.
func (s *Service) SeedUsers() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Username: "admin", Password: "admin", Role: models.RoleAdmin, Name: "Admin"},
		{Username: "tech-a", Password: "password", Role: models.RoleTechnician, Name: "Tech A",
			Contact: "tech-a@college.edu", Skills: pq.StringArray{"electrical", "network"}},
		{Username: "tech-b", Password: "password", Role: models.RoleTechnician, Name: "Tech B",
			Contact: "tech-b@college.edu", Skills: pq.StringArray{"plumbing", "carpentry"}},
		{Username: "student1", Password: "student", Role: models.RoleStudent, Name: "Student One"},
	}
	for i := range users {
		if err := s.DB.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	s.Log.Info("seeded default users", "count", len(users))
	return nil
}
