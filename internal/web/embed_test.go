package web_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphreevencarandang/contract-reader/internal/web"
)

func TestFileSystem_ContainsUIAssets(t *testing.T) {
	staticFS, err := web.FileSystem()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "app.css", "app.js"} {
		_, err := fs.Stat(staticFS, name)
		assert.NoError(t, err, name)
	}
}

func TestRegisterStaticRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	web.RegisterStaticRoutes(r)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{"root serves index", "/", "<!DOCTYPE html>"},
		{"asset served directly", "/app.js", "summaryText"},
		{"unknown path falls back to index", "/some/bookmarked/page", "<!DOCTYPE html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
