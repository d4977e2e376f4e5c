package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deepakagg123/deepakagg123.github.io/database"
	"github.com/deepakagg123/deepakagg123.github.io/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		profileHandler:     newProfileHandler(database.ProfileRepo()),
		publicationHandler: newPublicationHandler(database.PublicationRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		newsHandler:        newNewsHandler(database.NewsRepo()),
	}
}

// parseID extracts the integer id path parameter from the request.
func parseID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing id")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid id")
	}
	return id, nil
}
