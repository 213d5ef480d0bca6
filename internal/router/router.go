package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/unclebandit/catalog-backend/internal/controller"
	"github.com/unclebandit/catalog-backend/internal/handler"
	"github.com/unclebandit/catalog-backend/internal/middleware"
	"github.com/unclebandit/catalog-backend/internal/upload"
)

type Options struct {
	Customers *controller.CustomerController
	Products  *controller.ProductController
	// StaticDir holds the single page app; UploadDir is served under
	// /static/uploads/.
	StaticDir string
	UploadDir string
	Log       logrus.FieldLogger
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LogRequest(opts.Log))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}))

		r.Get("/health", handler.Health)
		// chi routes both /api/customers and /api/customers/ to the "/" pattern.
		r.Route("/customers", opts.Customers.Routes)
		r.Route("/products", opts.Products.Routes)
		r.NotFound(handler.APINotFound)
	})

	uploads := http.StripPrefix(upload.PublicPrefix, handler.NoListing(http.FileServer(http.Dir(opts.UploadDir))))
	r.Handle(upload.PublicPrefix+"*", uploads)

	r.NotFound(handler.SPAHandler{Dir: opts.StaticDir}.ServeHTTP)

	return r
}
