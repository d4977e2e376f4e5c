package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/deepakagg123/deepakagg123.github.io/contract"
)

// setupRoutes registers every operation from the shared contract.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Profile endpoints (singleton, POST upserts)
		r.Method(contract.ProfileGet.Method, contract.ProfileGet.Pattern(), handlers.profileHandler.getProfile())
		r.Method(contract.ProfileUpdate.Method, contract.ProfileUpdate.Pattern(), handlers.profileHandler.updateProfile())

		// Publication endpoints
		r.Method(contract.PublicationsList.Method, contract.PublicationsList.Pattern(), handlers.publicationHandler.listPublications())
		r.Method(contract.PublicationsCreate.Method, contract.PublicationsCreate.Pattern(), handlers.publicationHandler.createPublication())
		r.Method(contract.PublicationsUpdate.Method, contract.PublicationsUpdate.Pattern(), handlers.publicationHandler.updatePublication())
		r.Method(contract.PublicationsDelete.Method, contract.PublicationsDelete.Pattern(), handlers.publicationHandler.deletePublication())

		// Project endpoints
		r.Method(contract.ProjectsList.Method, contract.ProjectsList.Pattern(), handlers.projectHandler.listProjects())
		r.Method(contract.ProjectsCreate.Method, contract.ProjectsCreate.Pattern(), handlers.projectHandler.createProject())
		r.Method(contract.ProjectsUpdate.Method, contract.ProjectsUpdate.Pattern(), handlers.projectHandler.updateProject())
		r.Method(contract.ProjectsDelete.Method, contract.ProjectsDelete.Pattern(), handlers.projectHandler.deleteProject())

		// News endpoints (no update operation is exposed)
		r.Method(contract.NewsList.Method, contract.NewsList.Pattern(), handlers.newsHandler.listNews())
		r.Method(contract.NewsCreate.Method, contract.NewsCreate.Pattern(), handlers.newsHandler.createNews())
		r.Method(contract.NewsDelete.Method, contract.NewsDelete.Pattern(), handlers.newsHandler.deleteNews())
	})
}
