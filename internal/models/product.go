package models

import "gorm.io/gorm"

// Product represents a catalog entry. Prices are stored in the smallest
// currency unit.
type Product struct {
	ID               string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string   `json:"name" validate:"required,min=3,max=200"`
	Price            int      `json:"price" validate:"required,gt=0"`
	OriginalPrice    int      `json:"original_price" validate:"gte=0"`
	Discount         int      `json:"discount"` // derived from Price/OriginalPrice, never authored directly
	Images           []string `json:"images" gorm:"serializer:json" validate:"required,min=1"`
	Category         string   `json:"category" validate:"required"`
	Fabric           string   `json:"fabric"`
	Sizes            []string `json:"sizes" gorm:"serializer:json"`
	Description      string   `json:"description" validate:"omitempty,max=2000"`
	CareInstructions string   `json:"care_instructions" validate:"omitempty,max=500"`
	InStock          bool     `json:"in_stock"`
	Featured         bool     `json:"featured"`
	Trending         bool     `json:"trending"`
	Color            string   `json:"color,omitempty"`
	Video            string   `json:"video,omitempty" validate:"omitempty,url"`
	gorm.Model                // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ComputeDiscount returns the percentage discount implied by the price
// pair: round((original-price)/original*100) when the original price is
// higher, else 0. The admin surface recomputes this on every price edit.
func ComputeDiscount(price, originalPrice int) int {
	if originalPrice <= price || originalPrice <= 0 {
		return 0
	}
	return int(float64(originalPrice-price)/float64(originalPrice)*100 + 0.5)
}
