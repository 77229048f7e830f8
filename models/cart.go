package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal  float64    `json:"subtotal"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        string    `gorm:"primaryKey;type:VARCHAR(36)" json:"id"`
	CartID    uint      `gorm:"index" json:"-"` // Faster queries
	ProductID uint      `json:"product_id"`
	Size      int       `json:"size"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"` // unit price snapshot, captured at last add/update
	AddedAt   time.Time `json:"added_at"`
}

// RecalcSubtotal rederives Subtotal from the line items. Must be called before
// every persist; Subtotal is never set independently.
func (c *Cart) RecalcSubtotal() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Subtotal = total
}

// FindLine returns the line for (productID, size), or nil. The pair is unique
// within a cart.
func (c *Cart) FindLine(productID uint, size int) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItem returns the line with the given identifier, or nil.
func (c *Cart) FindItem(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// UpsertLine merges quantity into an existing (product, size) line or appends
// a new one. On merge the price snapshot is refreshed to the product's current
// effective price. Returns the touched line.
func (c *Cart) UpsertLine(product *Product, size, quantity int) *CartItem {
	if line := c.FindLine(product.ID, size); line != nil {
		line.Quantity += quantity
		line.Price = product.EffectivePrice()
		line.AddedAt = time.Now()
		return line
	}
	c.Items = append(c.Items, CartItem{
		ID:        uuid.NewString(),
		CartID:    c.ID,
		ProductID: product.ID,
		Size:      size,
		Quantity:  quantity,
		Price:     product.EffectivePrice(),
		AddedAt:   time.Now(),
	})
	return &c.Items[len(c.Items)-1]
}

// RemoveItem drops the line with the given identifier. Reports whether a line
// was removed.
func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
