package wishlistControllers

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
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// -------- Engine --------

// GetWishlist resolves the user's wishlist to product summaries, silently
// dropping references that no longer resolve. Same tolerant-read policy as
// the cart.
func GetWishlist(db *gorm.DB, userID uint) ([]models.Product, error) {
	var wishlist models.Wishlist
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Product{}, nil
		}
		return nil, apperr.Internal(err)
	}

	ids := make([]uint, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		ids = append(ids, item.ProductID)
	}
	byID, err := store.FindProductsByIDs(db, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	// Preserve insertion order for display
	products := make([]models.Product, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		if product, ok := byID[item.ProductID]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

// AddToWishlist appends a product reference. Conflict if already present.
func AddToWishlist(db *gorm.DB, userID, productID uint) error {
	if _, err := store.FindProductByID(db, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Internal(err)
	}

	var wishlist models.Wishlist
	err := db.Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internal(err)
		}
		wishlist = models.Wishlist{UserID: userID}
		if err := db.Create(&wishlist).Error; err != nil {
			return apperr.Internal(err)
		}
	}

	if wishlist.Contains(productID) {
		return apperr.Conflict("Product already in wishlist")
	}

	item := models.WishlistItem{
		WishlistID: wishlist.ID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// RemoveFromWishlist removes a product reference. NotFound if the wishlist
// does not exist or the product is not a member.
func RemoveFromWishlist(db *gorm.DB, userID, productID uint) error {
	var wishlist models.Wishlist
	if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Wishlist not found")
		}
		return apperr.Internal(err)
	}

	result := db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Product not in wishlist")
	}
	return nil
}

// -------- Handlers --------

// GET /api/wishlist
func GetWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		products, err := GetWishlist(db, userID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(products),
			"data":    gin.H{"products": products},
		})
	}
}

// POST /api/wishlist/:productId
func AddToWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		productID, err := parseProductID(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		if err := AddToWishlist(db, userID, productID); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"message": "Product added to wishlist"})
	}
}

// DELETE /api/wishlist/:productId
func RemoveFromWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		productID, err := parseProductID(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		if err := RemoveFromWishlist(db, userID, productID); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"message": "Product removed from wishlist"})
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid product ID")
	}
	return uint(id), nil
}
