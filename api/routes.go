package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint, splitting them into public,
// caller-optional and authenticated groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/register", handlers.userHandler.register())
		r.Post("/auth/login", handlers.userHandler.login())

		r.Get("/categories", handlers.projectHandler.listCategories())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/search/suggestions", handlers.searchHandler.suggestions())
	})

	// Caller-optional routes: anonymous callers get an answer, not a 401
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.resolveCaller)

		r.Get("/projects/interest/check", handlers.interestHandler.checkInterest())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/projects/interest", handlers.interestHandler.expressInterest())
		r.Post("/messages", handlers.messageHandler.sendMessage())

		r.Get("/user/profile", handlers.userHandler.getProfile())
		r.Put("/user/profile", handlers.userHandler.updateProfile())
	})
}
