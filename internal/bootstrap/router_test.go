package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase/supabasetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		AdminPassword: "s3cret",
		Backend:       supabasetest.New(t).Client(),
	})
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(newAPI(t), "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Portfolio API is running"}`, w.Body.String())
}

func TestIndexListsEndpoints(t *testing.T) {
	w := get(newAPI(t), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/projects")
	assert.Contains(t, w.Body.String(), "/api/certificates")
	assert.Contains(t, w.Body.String(), "/api/visits")
}

func TestUnknownRoute(t *testing.T) {
	w := get(newAPI(t), "/api/nothing-here")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
}

func TestAllResourcesMounted(t *testing.T) {
	r := newAPI(t)

	for _, path := range []string{"/api/projects", "/api/certificates", "/api/visits"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}
