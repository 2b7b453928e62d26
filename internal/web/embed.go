// Package web provides the embedded single-page UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// FileSystem returns the embedded filesystem with the static folder as root.
func FileSystem() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}

// RegisterStaticRoutes serves the embedded UI for all routes the API does
// not claim. Unknown paths fall back to index.html so a bookmarked page
// still loads the app.
func RegisterStaticRoutes(r *gin.Engine) {
	staticFS, err := FileSystem()
	if err != nil {
		// The embed directive guarantees the directory exists; a failure
		// here is a build problem, not a runtime condition.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(staticFS))

	r.NoRoute(func(c *gin.Context) {
		requestPath := strings.TrimPrefix(c.Request.URL.Path, "/")
		if requestPath == "" {
			requestPath = "index.html"
		}

		if _, err := fs.Stat(staticFS, requestPath); err != nil {
			c.Request.URL.Path = "/"
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
