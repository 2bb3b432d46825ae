package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up the public site routes
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Catalog Handler endpoints
		r.Get("/project-types", handlers.catalogHandler.getProjectTypes())
		r.Get("/projects/type/{typeID}", handlers.catalogHandler.getProjectsByType())
		r.Get("/projects/latest", handlers.catalogHandler.getLatestProjects())
		r.Get("/projects/{token}", handlers.catalogHandler.getProjectDetail(ModeDirectRoute))
		r.Get("/projectByClient/{token}", handlers.catalogHandler.getProjectDetail(ModeClientRoute))

		// Team Handler endpoints
		r.Get("/team-members/featured", handlers.teamHandler.getFeaturedMembers())

		// Clients Handler endpoints
		r.Get("/our-clients/feature", handlers.clientsHandler.getFeaturedClients())
	})
}
