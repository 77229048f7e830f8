package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Size      int  `json:"size" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// CartLineView is a cart line joined with the current display metadata of its
// product.
type CartLineView struct {
	models.CartItem
	ProductName  string `json:"product_name"`
	ProductSlug  string `json:"product_slug"`
	ProductImage string `json:"product_image"`
}

// CartView is what GetCart returns. Lines whose product no longer resolves
// are absent, and Subtotal covers visible lines only.
type CartView struct {
	ID       uint           `json:"id"`
	Items    []CartLineView `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

// -------- Engine --------

// GetCart returns the user's cart with lines resolved against the catalog.
// Lines pointing at missing or soft-deleted products are hidden from the view
// but left in storage. A user with no cart row gets an empty view, never an
// error.
func GetCart(db *gorm.DB, userID uint) (*CartView, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartView{Items: []CartLineView{}}, nil
		}
		return nil, apperr.Internal(err)
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := store.FindProductsByIDs(db, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	view := &CartView{ID: cart.ID, Items: []CartLineView{}}
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		view.Items = append(view.Items, CartLineView{
			CartItem:     item,
			ProductName:  product.Name,
			ProductSlug:  product.Slug,
			ProductImage: firstImage(product.Images),
		})
		view.Subtotal += item.Price * float64(item.Quantity)
	}
	return view, nil
}

// AddToCart merges quantity into the (product, size) line, refreshing its
// price snapshot to the product's current effective price, or appends a new
// line. The cart row is created lazily on first add. Subtotal is recomputed
// and persisted in the same transaction.
func AddToCart(db *gorm.DB, userID, productID uint, size, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperr.BadRequest("Quantity must be a positive integer")
	}

	product, err := store.FindProductByID(db, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Internal(err)
	}

	var cart models.Cart
	err = db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Internal(err)
		}
		cart = models.Cart{UserID: userID}
	}

	merged := cart.FindLine(product.ID, size) != nil
	cart.UpsertLine(product, size, quantity)
	cart.RecalcSubtotal()

	err = db.Transaction(func(tx *gorm.DB) error {
		if cart.ID == 0 {
			return tx.Create(&cart).Error
		}
		line := cart.FindLine(product.ID, size)
		line.CartID = cart.ID
		if merged {
			if err := tx.Save(line).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("subtotal", cart.Subtotal).Error
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &cart, nil
}

// UpdateCartItem overwrites a line's quantity. A quantity of zero or below
// removes the line instead of persisting it. No merge logic here, unlike add.
func UpdateCartItem(db *gorm.DB, userID uint, itemID string, quantity int) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Cart not found")
		}
		return nil, apperr.Internal(err)
	}

	item := cart.FindItem(itemID)
	if item == nil {
		return nil, apperr.NotFound("Item not found in cart")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if quantity <= 0 {
			cart.RemoveItem(itemID)
			if err := tx.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
				return err
			}
		} else {
			item.Quantity = quantity
			if err := tx.Model(&models.CartItem{}).Where("id = ?", itemID).
				Update("quantity", quantity).Error; err != nil {
				return err
			}
		}
		cart.RecalcSubtotal()
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("subtotal", cart.Subtotal).Error
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &cart, nil
}

// RemoveFromCart drops the named line and recomputes the subtotal.
func RemoveFromCart(db *gorm.DB, userID uint, itemID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Cart not found")
		}
		return nil, apperr.Internal(err)
	}

	if !cart.RemoveItem(itemID) {
		return nil, apperr.NotFound("Item not found in cart")
	}
	cart.RecalcSubtotal()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("subtotal", cart.Subtotal).Error
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &cart, nil
}

// ClearCart removes every line. The cart row itself persists.
func ClearCart(db *gorm.DB, userID uint) error {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperr.Internal(err)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("subtotal", 0).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

// -------- Handlers --------

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		view, err := GetCart(db, userID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(view.Items),
			"data":    gin.H{"cart": view},
		})
	}
}

// POST /api/cart/add
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		cart, err := AddToCart(db, userID, input.ProductID, input.Size, input.Quantity)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"message": "Item added to cart",
			"data":    gin.H{"cart": cart},
		})
	}
}

// PUT /api/cart/update
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		cart, err := UpdateCartItem(db, userID, input.ItemID, input.Quantity)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"cart": cart}})
	}
}

// DELETE /api/cart/remove/:itemId
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		cart, err := RemoveFromCart(db, userID, c.Param("itemId"))
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"cart": cart}})
	}
}

// DELETE /api/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		if err := ClearCart(db, userID); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
