// Package admin is the session-protected management panel: a login page
// backed by the shared admin secret and a CRUD mirror of the public API
// for the dashboard frontend.
package admin

import (
	"net/http"

	"github.com/andrefarias-dev/portfolio-backend/internal/auth"
	"github.com/andrefarias-dev/portfolio-backend/internal/certificates"
	"github.com/andrefarias-dev/portfolio-backend/internal/projects"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	store    *auth.SessionStore
	password string
}

type Deps struct {
	Store        *auth.SessionStore
	Password     string
	Projects     *projects.Repo
	Certificates *certificates.Repo
}

// Register mounts the login flow, the dashboard and the admin CRUD API
// under /admin.
func Register(r gin.IRouter, dep Deps) {
	h := &Handler{store: dep.Store, password: dep.Password}

	r.GET("/admin/login", h.loginPage)
	r.POST("/admin/login", h.login)
	r.POST("/admin/logout", h.logout)

	protected := r.Group("/admin")
	protected.Use(auth.RequireSession(dep.Store))
	protected.GET("", h.dashboard)

	api := protected.Group("/api")
	projects.RegisterAdmin(api.Group("/projects"), dep.Projects)
	certificates.RegisterAdmin(api.Group("/certificates"), dep.Certificates)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) login(c *gin.Context) {
	if c.PostForm("password") != h.password {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Invalid password"})
		return
	}

	cookie, err := h.store.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(auth.SessionCookie, cookie, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) logout(c *gin.Context) {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		_ = h.store.Destroy(c.Request.Context(), cookie)
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{})
}
