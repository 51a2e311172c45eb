package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mind-engage/gradecalc/internal/session"
)

// MountPage registers the HTML form routes.
func MountPage(r chi.Router, store *session.Store) {
	r.Get("/", PageHandler(store))
	r.Post("/save", SaveRowsFormHandler(store))
	r.Post("/subjects", AddSubjectFormHandler(store))
	r.Post("/subjects/{subjectID}/remove", RemoveSubjectFormHandler(store))
	r.Post("/compute", ComputeFormHandler(store))
	r.Post("/reset", ResetFormHandler(store))
}

// MountAPI registers the JSON routes under the given router. Cross-origin
// callers are limited to origins. CORS runs before sessions so preflight
// requests never open one; only routes touching form state sit behind
// sessions.
func MountAPI(r chi.Router, store *session.Store, origins []string, sessions func(http.Handler) http.Handler) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/scale", ScaleHandler())
	r.Group(func(sr chi.Router) {
		sr.Use(sessions)
		sr.Get("/session", GetSessionHandler(store))
		sr.Post("/subjects", AddSubjectHandler(store))
		sr.Patch("/subjects/{subjectID}", UpdateSubjectHandler(store))
		sr.Delete("/subjects/{subjectID}", RemoveSubjectHandler(store))
		sr.Post("/compute", ComputeHandler(store))
		sr.Post("/reset", ResetHandler(store))
	})
}

// MountHealth registers liveness and readiness probes.
func MountHealth(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

// Routes builds the full handler tree.
func Routes(store *session.Store, tokens *session.Tokens, secureCookies bool, origins []string) chi.Router {
	sessions := session.Middleware(store, tokens, secureCookies)
	r := chi.NewRouter()
	MountHealth(r)
	r.Route("/api", func(ar chi.Router) {
		MountAPI(ar, store, origins, sessions)
	})
	r.Group(func(sr chi.Router) {
		sr.Use(sessions)
		MountPage(sr, store)
	})
	return r
}
