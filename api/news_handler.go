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

type newsHandler struct {
	responder Responder
	logger    zerolog.Logger
	newsRepo  *database.NewsRepo
}

func newNewsHandler(newsRepo *database.NewsRepo) newsHandler {
	logger := log.With().Str("handlerName", "newsHandler").Logger()

	return newsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		newsRepo:  newsRepo,
	}
}

// listNews retrieves all news items
// @Summary List news
// @Description Retrieves all news items ordered by date descending
// @Tags News
// @Produce json
// @Success 200 {array} models.NewsItem "List of news items"
// @Router /api/news [get]
func (h newsHandler) listNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.newsRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "news", err))
			return
		}

		h.responder.WriteJSON(w, items)
	}
}

// createNews creates a new news item
// @Summary Create news item
// @Description Creates a new news item in the database
// @Tags News
// @Accept json
// @Produce json
// @Param news body models.NewsItem true "News item data"
// @Success 201 {object} models.NewsItem "Created news item"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid news data"
// @Router /api/news [post]
func (h newsHandler) createNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var item models.NewsItem
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&item); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode news request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := item.Validate(); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		if err := h.newsRepo.Add(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "news item", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, item)
	}
}

// deleteNews deletes a news item by ID
// @Summary Delete news item
// @Description Deletes a news item from the database by ID
// @Tags News
// @Param id path int true "News item ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 404 {object} ErrorResponse "Not Found - News item not found"
// @Router /api/news/{id} [delete]
func (h newsHandler) deleteNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.newsRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "news item", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("News item not found"))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
