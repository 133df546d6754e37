package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. It never touches the store, so it answers
// even while the database is down.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
