package handlers

import (
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/gin-gonic/gin"
)

// CreateReservation funnels booking creation through the domain constructor
// so sequences, validation and room holds all apply.
func CreateReservation(c *gin.Context) {
	var input models.NewReservation
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, "reservation.go", "CreateReservation", err)
		return
	}
	reservation, err := models.CreateReservation(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
