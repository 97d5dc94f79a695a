package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginStaff struct {
	ID         int    `gorm:"column:id"`
	BusinessId string `gorm:"column:business_id"`
	Role       string `gorm:"column:role"`
	Password   string `gorm:"column:password"`
}

// Login checks staff credentials and issues a tenant-scoped bearer token.
// Runs before any tenant identity exists, so the lookup bypasses the guard.
func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "auth.go", "Login", err)
		return
	}

	ctx := utils.SetSkipTenantScopeInContext(c.Request.Context(), true)

	var staff loginStaff
	err := config.GetDB().WithContext(ctx).
		Table("staffs").
		Where("email = ? AND is_active = ?", input.Email, true).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		RespondError(c, "auth.go", "Login", err)
		return
	}

	if err := utils.ComparePassword(staff.Password, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.JwtGenerate(staff.ID, staff.BusinessId, staff.Role)
	if err != nil {
		RespondError(c, "auth.go", "Login", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
