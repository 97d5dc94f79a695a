package handlers

import (
	"net/http"
	"strconv"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/gin-gonic/gin"
)

// Metadata endpoints serve dropdown data through the redis-backed readers.

func MetaRoomTypes(c *gin.Context) {
	roomTypes, err := models.ListAllResource[models.RoomType](c.Request.Context(), "name")
	if err != nil {
		RespondError(c, "meta.go", "MetaRoomTypes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": roomTypes})
}

func MetaRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	room, err := models.GetResource[models.Room](c.Request.Context(), id)
	if err != nil {
		RespondError(c, "meta.go", "MetaRoom", err)
		return
	}
	c.JSON(http.StatusOK, room)
}
