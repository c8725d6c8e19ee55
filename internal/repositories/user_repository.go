package repositories

import "fashionworld/internal/models"

// AdminUserRepository defines the interface for admin user data access.
type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByEmail(email string) (*models.AdminUser, error)
	GetByID(id string) (*models.AdminUser, error)
}
