package bootstrap

import (
	"github.com/andrefarias-dev/portfolio-backend/internal/admin"
	"github.com/andrefarias-dev/portfolio-backend/internal/auth"
	"github.com/andrefarias-dev/portfolio-backend/internal/certificates"
	"github.com/andrefarias-dev/portfolio-backend/internal/projects"
	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type AdminRouterDeps struct {
	AdminPassword string
	Backend       *supabase.Client
	Sessions      *auth.SessionStore
	TemplatesGlob string
}

// BuildAdminRouter assembles the admin panel server.
func BuildAdminRouter(dep AdminRouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.LoadHTMLGlob(dep.TemplatesGlob)

	admin.Register(r, admin.Deps{
		Store:        dep.Sessions,
		Password:     dep.AdminPassword,
		Projects:     projects.NewRepo(dep.Backend),
		Certificates: certificates.NewRepo(dep.Backend),
	})

	r.NoRoute(notFound)

	return r
}
