package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondError maps service errors onto HTTP statuses. Unrecognized errors
// are logged and reported as 500 without leaking internals.
func RespondError(c *gin.Context, moduleName string, funcName string, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
		return
	}

	if errors.Is(err, utils.ErrorRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	var integrityErr *utils.IntegrityError
	if errors.As(err, &integrityErr) {
		c.JSON(http.StatusConflict, gin.H{"error": integrityErr.Error()})
		return
	}

	var retryErr *utils.RetryExhaustedError
	if errors.As(err, &retryErr) {
		config.LogError(config.GetLogger(), moduleName, funcName, "retries exhausted", nil, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		return
	}

	config.LogError(config.GetLogger(), moduleName, funcName, "request failed", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
