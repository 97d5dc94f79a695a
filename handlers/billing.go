package handlers

import (
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/gin-gonic/gin"
)

func CreateBilling(c *gin.Context) {
	var input models.NewBilling
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "billing.go", "CreateBilling", err)
		return
	}
	billing, err := models.CreateBilling(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, billing)
}
