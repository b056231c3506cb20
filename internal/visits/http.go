package visits

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

// Register mounts the visit-counter routes. Both are public; incrementing
// needs no credential so the portfolio frontend can call it on page load.
func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.GET("", h.total)
	rg.POST("", h.increment)
}

func (h *Handler) total(c *gin.Context) {
	total, err := h.repo.Total(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *Handler) increment(c *gin.Context) {
	total, created, err := h.repo.Increment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"total": total})
}
