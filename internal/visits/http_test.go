package visits

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase/supabasetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(backend *supabasetest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	Register(api.Group("/visits"), NewRepo(backend.Client()))
	return r
}

func do(r *gin.Engine, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/visits", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func total(t *testing.T, w *httptest.ResponseRecorder) int {
	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Total
}

func TestTotalDefaultsToZero(t *testing.T) {
	r := newRouter(supabasetest.New(t))

	w := do(r, http.MethodGet)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, total(t, w))
}

func TestFirstIncrementCreatesRow(t *testing.T) {
	backend := supabasetest.New(t)
	r := newRouter(backend)

	w := do(r, http.MethodPost)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, total(t, w))
	assert.Len(t, backend.Rows("visitas"), 1)
}

func TestSequentialIncrements(t *testing.T) {
	backend := supabasetest.New(t)
	backend.Seed("visitas", map[string]any{"total": float64(41)})
	r := newRouter(backend)

	w := do(r, http.MethodPost)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 42, total(t, w))

	w = do(r, http.MethodPost)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 43, total(t, w))

	w = do(r, http.MethodGet)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 43, total(t, w))
}
