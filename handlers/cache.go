package handlers

import (
	"exercise-tracker/cache"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	users *cache.UserCache
}

func NewCacheHandler(users *cache.UserCache) *CacheHandler {
	return &CacheHandler{users: users}
}

// GetCacheStats GET /api/cache/stats
func (h *CacheHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.users.Stats(),
	})
}

// ClearCache POST /api/cache/clear
func (h *CacheHandler) ClearCache(c *gin.Context) {
	h.users.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
