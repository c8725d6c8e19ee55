package models

import "gorm.io/gorm"

// Banner represents a homepage hero banner.
type Banner struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Image    string `json:"image" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle" validate:"omitempty,max=300"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
	Active   bool   `json:"active"`
	gorm.Model
}
