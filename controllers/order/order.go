package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Size      int     `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type CheckoutInput struct {
	OrderItems      []OrderItemInput       `json:"order_items"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	ItemsPrice      float64                `json:"items_price"`
	TaxPrice        float64                `json:"tax_price"`
	ShippingPrice   float64                `json:"shipping_price"`
	TotalPrice      float64                `json:"total_price"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Engine --------

// CreateOrder persists an immutable order snapshot with status pending.
// Pricing fields are stored verbatim as submitted; the catalog is not
// consulted. The cart is left untouched, clearing it is a separate client
// action.
func CreateOrder(db *gorm.DB, userID uint, input CheckoutInput) (*models.Order, error) {
	if len(input.OrderItems) == 0 {
		return nil, apperr.BadRequest("No order items")
	}

	items := make([]models.OrderItem, 0, len(input.OrderItems))
	for _, item := range input.OrderItems {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Size:      item.Size,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      input.ItemsPrice,
		TaxPrice:        input.TaxPrice,
		ShippingPrice:   input.ShippingPrice,
		TotalPrice:      input.TotalPrice,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &order, nil
}

// GetOrder returns the order if the acting user owns it or is an admin.
func GetOrder(db *gorm.DB, orderID, actingUserID uint, actingRole models.UserRole) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("User").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No order found with that ID")
		}
		return nil, apperr.Internal(err)
	}
	if order.UserID != actingUserID && actingRole != models.RoleAdmin {
		return nil, apperr.Forbidden("Not authorized to view this order")
	}
	return &order, nil
}

// GetMyOrders returns all orders owned by the user, in insertion order.
func GetMyOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// GetAllOrders returns every order with its owner joined in. Admin only,
// enforced by the route middleware.
func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").Preload("User").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// UpdateOrderStatus overwrites the status unconditionally. The status name
// must be known, but no transition legality check is made, so an admin can
// move a delivered order back to pending.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal(err)
	}

	order.Status = newStatus
	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &order, nil
}

// MarkOrderPaid flips the payment flag. Owner or admin.
func MarkOrderPaid(db *gorm.DB, orderID, actingUserID uint, actingRole models.UserRole) (*models.Order, error) {
	order, err := GetOrder(db, orderID, actingUserID, actingRole)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	if err := db.Model(order).Updates(map[string]any{"is_paid": true, "paid_at": now}).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return order, nil
}

// -------- Handlers --------

// POST /api/orders/checkout
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		order, err := CreateOrder(db, userID, input)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"order": order}})
	}
}

// GET /api/orders/my
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		orders, err := GetMyOrders(db, userID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(orders),
			"data":    gin.H{"orders": orders},
		})
	}
}

// GET /api/orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		order, err := GetOrder(db, orderID, userID, middleware.Role(c))
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"order": order}})
	}
}

// GET /api/orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetAllOrders(db)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(orders),
			"data":    gin.H{"orders": orders},
		})
	}
}

// PUT /api/orders/:id/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := parseOrderID(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		order, err := UpdateOrderStatus(db, orderID, input.Status)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"order": order}})
	}
}

// PUT /api/orders/:id/pay
func MarkOrderPaidHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		order, err := MarkOrderPaid(db, orderID, userID, middleware.Role(c))
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"order": order}})
	}
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid order ID")
	}
	return uint(id), nil
}
