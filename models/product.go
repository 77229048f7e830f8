package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type Product struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Slug          string     `gorm:"uniqueIndex" json:"slug"`
	Brand         string     `json:"brand"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Price         float64    `gorm:"not null" json:"price"`
	DiscountPrice float64    `json:"discount_price"`
	Images        []string   `gorm:"serializer:json" json:"images"`
	Sizes         []int      `gorm:"serializer:json" json:"sizes"`
	Colors        []string   `gorm:"serializer:json" json:"colors"`
	Gender        string     `gorm:"type:VARCHAR(10)" json:"gender"` // "men", "women", "unisex"
	Rating        float64    `json:"rating"`
	TotalReviews  int        `json:"total_reviews"`
	IsBestSeller  bool       `json:"is_best_seller"`
	IsNewArrival  bool       `json:"is_new_arrival"`
	IsOnSale      bool       `json:"is_on_sale"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeSave derives the slug from the product name, lowercased.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Slug = utils.Slugify(p.Name)
	return nil
}

// EffectivePrice is the discount price when one is set, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
