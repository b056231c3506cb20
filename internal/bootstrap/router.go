package bootstrap

import (
	"net/http"

	httpapi "github.com/andrefarias-dev/portfolio-backend/internal/api/http"
	"github.com/andrefarias-dev/portfolio-backend/internal/auth"
	"github.com/andrefarias-dev/portfolio-backend/internal/certificates"
	"github.com/andrefarias-dev/portfolio-backend/internal/projects"
	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
	"github.com/andrefarias-dev/portfolio-backend/internal/visits"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AdminPassword string
	Backend       *supabase.Client
}

// BuildRouter assembles the public API: health, projects, certificates
// and the visit counter. Mutations are gated by the bearer guard.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	httpapi.NewHealthHandler("Portfolio API is running").RegisterRoutes(r)
	httpapi.RegisterIndex(r)

	guard := auth.RequireBearer(dep.AdminPassword)

	api := r.Group("/api")
	projects.Register(api.Group("/projects"), projects.NewRepo(dep.Backend), guard)
	certificates.Register(api.Group("/certificates"), certificates.NewRepo(dep.Backend), guard)
	visits.Register(api.Group("/visits"), visits.NewRepo(dep.Backend))

	r.NoRoute(notFound)

	return r
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
}
