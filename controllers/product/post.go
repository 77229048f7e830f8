package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice float64  `json:"discount_price"`
	Images        []string `json:"images"`
	Sizes         []int    `json:"sizes"`
	Colors        []string `json:"colors"`
	Gender        string   `json:"gender"`
	IsBestSeller  bool     `json:"is_best_seller"`
	IsNewArrival  bool     `json:"is_new_arrival"`
	IsOnSale      bool     `json:"is_on_sale"`
}

// CreateProduct creates a catalog record. Admin only. The slug is derived
// from the name on save.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		if input.Gender != "" && !validGender(input.Gender) {
			utils.Fail(c, apperr.BadRequest("Gender must be men, women or unisex"))
			return
		}
		if input.DiscountPrice > 0 && input.DiscountPrice >= input.Price {
			utils.Fail(c, apperr.BadRequest("Discount price must be below the list price"))
			return
		}

		product := models.Product{
			Name:          input.Name,
			Brand:         input.Brand,
			Category:      input.Category,
			Description:   input.Description,
			Price:         input.Price,
			DiscountPrice: input.DiscountPrice,
			Images:        input.Images,
			Sizes:         input.Sizes,
			Colors:        input.Colors,
			Gender:        strings.ToLower(input.Gender),
			IsBestSeller:  input.IsBestSeller,
			IsNewArrival:  input.IsNewArrival,
			IsOnSale:      input.IsOnSale,
		}
		if err := db.Create(&product).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"product": product}})
	}
}

func validGender(gender string) bool {
	switch strings.ToLower(gender) {
	case "men", "women", "unisex":
		return true
	}
	return false
}
