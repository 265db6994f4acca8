package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// StaticRouter serves the landing page and its assets from a fixed
// directory.
type StaticRouter struct {
	dir string
}

func NewStaticRouter(dir string) *StaticRouter {
	return &StaticRouter{dir: dir}
}

func (sr *StaticRouter) SetupRoutes(r chi.Router) {

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(sr.dir, "index.html"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(sr.dir))))

}
