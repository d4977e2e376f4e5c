package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deepakagg123/deepakagg123.github.io/database"
	"github.com/deepakagg123/deepakagg123.github.io/errs"
	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type publicationHandler struct {
	responder       Responder
	logger          zerolog.Logger
	publicationRepo *database.PublicationRepo
}

func newPublicationHandler(publicationRepo *database.PublicationRepo) publicationHandler {
	logger := log.With().Str("handlerName", "publicationHandler").Logger()

	return publicationHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		publicationRepo: publicationRepo,
	}
}

// listPublications retrieves all publications
// @Summary List publications
// @Description Retrieves all publications ordered by year descending
// @Tags Publications
// @Produce json
// @Success 200 {array} models.Publication "List of publications"
// @Router /api/publications [get]
func (h publicationHandler) listPublications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publications, err := h.publicationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "publications", err))
			return
		}

		h.responder.WriteJSON(w, publications)
	}
}

// createPublication creates a new publication
// @Summary Create publication
// @Description Creates a new publication in the database
// @Tags Publications
// @Accept json
// @Produce json
// @Param publication body models.Publication true "Publication data"
// @Success 201 {object} models.Publication "Created publication"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid publication data"
// @Router /api/publications [post]
func (h publicationHandler) createPublication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var publication models.Publication
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&publication); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode publication request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := publication.Validate(); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		if err := h.publicationRepo.Add(&publication); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "publication", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, publication)
	}
}

// updatePublication applies a partial update to an existing publication
// @Summary Update publication
// @Description Updates only the provided fields of an existing publication
// @Tags Publications
// @Accept json
// @Produce json
// @Param id path int true "Publication ID"
// @Param publication body models.UpdatePublication true "Fields to update"
// @Success 200 {object} models.Publication "Updated publication"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id or payload"
// @Failure 404 {object} ErrorResponse "Not Found - Publication not found"
// @Router /api/publications/{id} [put]
func (h publicationHandler) updatePublication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var update models.UpdatePublication
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&update); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode publication request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := update.Validate(); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		publication, err := h.publicationRepo.Update(id, update.Fields())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "publication", err))
			return
		}

		if publication == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Publication not found"))
			return
		}

		h.responder.WriteJSON(w, publication)
	}
}

// deletePublication deletes a publication by ID
// @Summary Delete publication
// @Description Deletes a publication from the database by ID
// @Tags Publications
// @Param id path int true "Publication ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 404 {object} ErrorResponse "Not Found - Publication not found"
// @Router /api/publications/{id} [delete]
func (h publicationHandler) deletePublication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.publicationRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "publication", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Publication not found"))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
