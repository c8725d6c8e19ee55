package models

import "gorm.io/gorm"

// AdminUser represents a dashboard operator. Shoppers have no accounts;
// only the admin area authenticates.
type AdminUser struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// TableName keeps the external schema's table name.
func (AdminUser) TableName() string { return "admin_users" }
