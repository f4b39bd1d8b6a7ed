package handlers

import (
	"net/http"

	"gymdesk/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last recorded health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
