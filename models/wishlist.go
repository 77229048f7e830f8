package models

import "time"

type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE wishlist per user
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WishlistID uint      `gorm:"index:idx_wishlist_product,unique" json:"-"`
	ProductID  uint      `gorm:"index:idx_wishlist_product,unique" json:"product_id"`
	AddedAt    time.Time `json:"added_at"`
}

// Contains reports whether the wishlist already references the product.
func (w *Wishlist) Contains(productID uint) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
