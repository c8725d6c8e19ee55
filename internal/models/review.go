package models

import "gorm.io/gorm"

// Review represents a customer review shown on the storefront.
type Review struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name    string `json:"name" validate:"required,max=100"`
	Avatar  string `json:"avatar"` // initials shown in place of a photo
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
	Date    string `json:"date"`
	gorm.Model
}
