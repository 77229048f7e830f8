package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/auth"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// ValidateToken verifies the bearer token and attaches the acting user's id
// and role to the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		utils.Fail(c, apperr.Unauthorized("Authorization header is missing"))
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		utils.Fail(c, apperr.Unauthorized("Invalid or expired token"))
		c.Abort()
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
	c.Next()
}

// RequireAdmin rejects authenticated users without the admin role. Must run
// after ValidateToken.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get(ctxRole)
	if !exists || role.(models.UserRole) != models.RoleAdmin {
		utils.Fail(c, apperr.Forbidden("You do not have permission to perform this action"))
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the acting user's id attached by ValidateToken. Handlers
// pass it explicitly into every engine call.
func UserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// Role returns the acting user's role attached by ValidateToken.
func Role(c *gin.Context) models.UserRole {
	val, exists := c.Get(ctxRole)
	if !exists {
		return ""
	}
	role, _ := val.(models.UserRole)
	return role
}
