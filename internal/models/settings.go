package models

import "gorm.io/gorm"

// SiteSettings holds the contact and social links shown across the
// storefront. A single row is kept; updates replace it in place.
type SiteSettings struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	InstagramURL   string `json:"instagram_url" validate:"omitempty,url"`
	FacebookURL    string `json:"facebook_url" validate:"omitempty,url"`
	gorm.Model
}
