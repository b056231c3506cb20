package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterIndex serves a short API description on the root path.
func RegisterIndex(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Portfolio API - use /health or /api/projects",
			"endpoints": []string{"/health", "/api/projects", "/api/certificates", "/api/visits"},
		})
	})
}
