package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	message string
}

func NewHealthHandler(message string) *HealthHandler {
	return &HealthHandler{message: message}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": h.message,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
}
