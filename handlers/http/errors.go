package httpHandler

import (
	"errors"
	"exercise-tracker/usecases"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes 404 for unknown users and a generic 500 for everything
// else, logging the cause.
func respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, usecases.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
