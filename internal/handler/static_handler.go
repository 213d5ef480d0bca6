// internal/handler/static_handler.go
package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/unclebandit/catalog-backend/internal/utils"
)

// Health answers liveness checks.
func Health(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, utils.Envelope{
		"status":  "ok",
		"message": "API is running",
	}, http.StatusOK)
}

// APINotFound is the fallback for unknown /api routes.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	utils.SendError(w, "Not found", http.StatusNotFound)
}

// SPAHandler serves files from Dir and falls back to Dir/index.html for any
// path that does not name an existing file, so client side routes resolve.
type SPAHandler struct {
	Dir string
}

func (h SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// path.Clean on a rooted path cannot climb above Dir.
	name := path.Clean("/" + r.URL.Path)
	file := filepath.Join(h.Dir, filepath.FromSlash(name))

	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		http.ServeFile(w, r, file)
		return
	}

	index := filepath.Join(h.Dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

// NoListing answers 404 for directory paths so next never renders an index.
func NoListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
