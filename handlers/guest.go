package handlers

import (
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/gin-gonic/gin"
)

// CreateGuest funnels guest creation through the domain constructor so
// phone normalization and contact uniqueness apply.
func CreateGuest(c *gin.Context) {
	var input models.NewGuest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "guest.go", "CreateGuest", err)
		return
	}
	guest, err := models.CreateGuest(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, guest)
}
