package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by admin
)

// ParseOrderStatus maps a client-supplied string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"` // e.g. "card", "cod"
	ItemsPrice      float64         `json:"items_price"`
	TaxPrice        float64         `json:"tax_price"`
	ShippingPrice   float64         `json:"shipping_price"`
	TotalPrice      float64         `json:"total_price"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	IsPaid          bool            `json:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is a snapshot captured at checkout, independent of later catalog
// changes.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      int     `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
