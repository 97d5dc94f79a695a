package handlers

import (
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/gin-gonic/gin"
)

// CreateBusiness onboards a new tenant. Open endpoint; everything else a
// tenant does requires the token issued against this business.
func CreateBusiness(c *gin.Context) {
	var input models.NewBusiness
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "business.go", "CreateBusiness", err)
		return
	}
	business, err := models.CreateBusiness(c.Request.Context(), &input)
	if err != nil {
		RespondError(c, "business.go", "CreateBusiness", err)
		return
	}
	c.JSON(http.StatusCreated, business)
}

func GetBusiness(c *gin.Context) {
	businessId, ok := utils.GetBusinessIdFromContext(c.Request.Context())
	if !ok || businessId == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	business, err := models.GetBusinessById(c.Request.Context(), businessId)
	if err != nil {
		RespondError(c, "business.go", "GetBusiness", err)
		return
	}
	c.JSON(http.StatusOK, business)
}
