package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", RequireBearer(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireBearer(t *testing.T) {
	r := newGuardedRouter("s3cret")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing Authorization header",
		},
		{
			name:       "single token",
			header:     "wrong-format",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid Authorization header",
		},
		{
			name:       "wrong scheme",
			header:     "Basic s3cret",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid Authorization header",
		},
		{
			name:       "three tokens",
			header:     "Bearer s3cret extra",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid Authorization header",
		},
		{
			name:       "wrong secret",
			header:     "Bearer wrong-secret",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "correct secret",
			header:     "Bearer s3cret",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
			}
		})
	}
}
