package projects

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrefarias-dev/portfolio-backend/internal/auth"
	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase/supabasetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminSecret = "s3cret"

func newRouter(backend *supabasetest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	Register(api.Group("/projects"), NewRepo(backend.Client()), auth.RequireBearer(adminSecret))
	return r
}

func doJSON(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjects(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("projetos",
		map[string]any{"titulo": "API Gin", "descricao": "backend", "tecnologias": "go"},
		map[string]any{"titulo": "Site", "descricao": "frontend", "tecnologias": "react"},
	)
	r := newRouter(backend)

	w := doJSON(r, http.MethodGet, "/api/projects", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API Gin")
	assert.Contains(t, w.Body.String(), "Site")
}

func TestGetProjectByID(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("projetos", map[string]any{"id": float64(7), "titulo": "API Gin", "descricao": "d", "tecnologias": "go"})
	r := newRouter(backend)

	w := doJSON(r, http.MethodGet, "/api/projects/7", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"titulo":"API Gin"`)
}

func TestGetProjectNotFound(t *testing.T) {
	r := newRouter(supabasetest.New(t))

	w := doJSON(r, http.MethodGet, "/api/projects/9999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestGetProjectNonNumericID(t *testing.T) {
	r := newRouter(supabasetest.New(t))

	w := doJSON(r, http.MethodGet, "/api/projects/abc", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
}

func TestCreateProjectRequiresAuth(t *testing.T) {
	backend := supabasetest.New(t)
	r := newRouter(backend)

	body := `{"titulo":"t","descricao":"d","tecnologias":"go"}`

	w := doJSON(r, http.MethodPost, "/api/projects", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/projects", body, "wrong-secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Empty(t, backend.Rows("projetos"), "nothing may be persisted on auth failure")
}

func TestCreateProjectMissingFields(t *testing.T) {
	backend := supabasetest.New(t)
	r := newRouter(backend)

	w := doJSON(r, http.MethodPost, "/api/projects", `{"titulo":"t","descricao":"d"}`, adminSecret)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	assert.Empty(t, backend.Rows("projetos"), "nothing may be persisted on validation failure")
}

func TestCreateProject(t *testing.T) {
	backend := supabasetest.New(t)
	r := newRouter(backend)

	w := doJSON(r, http.MethodPost, "/api/projects", `{"titulo":"Novo","descricao":"d","tecnologias":["go","gin"]}`, adminSecret)
	require.Equal(t, http.StatusCreated, w.Code)

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "["), "create echoes the backend's array response")
	assert.Contains(t, body, `"titulo":"Novo"`)
	assert.Contains(t, body, `"created_at"`)
	assert.Contains(t, body, `"id"`)

	rows := backend.Rows("projetos")
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0]["created_at"])
}

func TestUpdateProject(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("projetos", map[string]any{"id": float64(3), "titulo": "Velho", "descricao": "d", "tecnologias": "go"})
	r := newRouter(backend)

	w := doJSON(r, http.MethodPut, "/api/projects/3", `{"titulo":"Atualizado"}`, adminSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"titulo":"Atualizado"`)
	assert.Contains(t, w.Body.String(), `"updated_at"`)
}

func TestUpdateProjectNullBody(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("projetos", map[string]any{"id": float64(3), "titulo": "t", "descricao": "d", "tecnologias": "go"})
	r := newRouter(backend)

	w := doJSON(r, http.MethodPut, "/api/projects/3", `null`, adminSecret)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestUpdateProjectNotFound(t *testing.T) {
	r := newRouter(supabasetest.New(t))

	w := doJSON(r, http.MethodPut, "/api/projects/9999", `{"titulo":"x"}`, adminSecret)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestDeleteProject(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("projetos", map[string]any{"id": float64(5), "titulo": "t", "descricao": "d", "tecnologias": "go"})
	r := newRouter(backend)

	w := doJSON(r, http.MethodDelete, "/api/projects/5", "", adminSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, w.Body.String())
	assert.Empty(t, backend.Rows("projetos"))
}

func TestDeleteProjectAbsentIDStillConfirms(t *testing.T) {
	r := newRouter(supabasetest.New(t))

	w := doJSON(r, http.MethodDelete, "/api/projects/9999", "", adminSecret)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, w.Body.String())
}
