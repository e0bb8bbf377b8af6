package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CSCI-GA-2820-SP25-001/orders/internal/models"
)

func badRequest(c *gin.Context, message string) {
	requestError(c, http.StatusBadRequest, message)
}

func unsupportedMediaType(c *gin.Context, message string) {
	requestError(c, http.StatusUnsupportedMediaType, message)
}

func internalError(c *gin.Context, message string) {
	requestError(c, http.StatusInternalServerError, message)
}

func requestError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

// modelError maps an entity-layer failure onto an HTTP reply: payload
// problems become 400, storage failures become 500.
func modelError(c *gin.Context, err error) {
	var dve *models.DataValidationError
	if errors.As(err, &dve) && dve.Kind != models.StorageError {
		badRequest(c, dve.Error())
		return
	}
	internalError(c, err.Error())
}

// requireJSON rejects body-bearing requests whose content type is
// missing or not application/json.
func requireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		unsupportedMediaType(c, "Content-Type must be application/json")
		return false
	}
	return true
}
