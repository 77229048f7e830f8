package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/auth"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type UpdateProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// GET /api/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("User not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"user": user}})
	}
}

// PUT /api/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Email != "" {
			user.Email = input.Email
		}
		if err := db.Save(&user).Error; err != nil {
			// Unique index on email surfaces here for taken addresses
			utils.Fail(c, apperr.Conflict("Email already in use"))
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"user": user}})
	}
}

// PUT /api/profile/password
func UpdatePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var input UpdatePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
			utils.Fail(c, apperr.Unauthorized("Your current password is wrong"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		// Re-issue the token so the client keeps a fresh session
		token, err := auth.SignToken(&user)
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"token":   token,
			"message": "Password updated successfully",
		})
	}
}

// GET /api/users (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(users),
			"data":    gin.H{"users": users},
		})
	}
}

// DELETE /api/users/:id (admin)
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid user ID"))
			return
		}
		result := db.Delete(&models.User{}, uint(id))
		if result.Error != nil {
			utils.Fail(c, apperr.Internal(result.Error))
			return
		}
		if result.RowsAffected == 0 {
			utils.Fail(c, apperr.NotFound("User not found"))
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
	}
}
