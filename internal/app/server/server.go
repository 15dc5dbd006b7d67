// Package server wires the chi router: middleware stack, public auth
// routes and the bearer-guarded /url group.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/handler"
	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/middleware"
)

func Init(logger *zap.Logger, urlService service.URLServiceIface, auth service.AuthIface, corsOrigin string) *chi.Mux {
	authHandler := handler.NewAuth(auth, logger)
	postHandler := handler.NewPost(urlService, logger)
	getHandler := handler.NewGet(urlService, logger)
	changeHandler := handler.NewChange(urlService, logger)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIP)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/verify", authHandler.Verify)
		r.Post("/login", authHandler.Login)
		r.Post("/signup", authHandler.Signup)
	})

	r.Route("/url", func(r chi.Router) {
		r.Use(middleware.WithBearer(auth))

		r.Post("/add", postHandler.Add)
		r.Get("/list", getHandler.List)
		r.Get("/list/domains", getHandler.Domains)
		r.Put("/favorite/change", changeHandler.Favorite)
		r.Delete("/delete", changeHandler.Delete)
		r.Get("/count", getHandler.Count)
	})

	r.Get("/ping", getHandler.PingDB)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
