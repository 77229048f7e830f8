package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			utils.Fail(c, apperr.Conflict("Email already registered"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleUser,
			Cart:     models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		sendToken(c, http.StatusCreated, &user)
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := checkCredentials(c, db)
		if !ok {
			return
		}
		sendToken(c, http.StatusOK, user)
	}
}

// POST /api/admin/login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := checkCredentials(c, db)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			utils.Fail(c, apperr.Forbidden("Not authorized as admin"))
			return
		}
		sendToken(c, http.StatusOK, user)
	}
}

func checkCredentials(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, apperr.BadRequest("Please provide email and password"))
		return nil, false
	}

	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, apperr.Unauthorized("Incorrect email or password"))
		} else {
			utils.Fail(c, apperr.Internal(err))
		}
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.Fail(c, apperr.Unauthorized("Incorrect email or password"))
		return nil, false
	}
	return &user, true
}

func sendToken(c *gin.Context, status int, user *models.User) {
	token, err := SignToken(user)
	if err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, status, gin.H{"token": token, "data": gin.H{"user": user}})
}
