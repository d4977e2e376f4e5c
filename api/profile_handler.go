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

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile retrieves the site owner's profile
// @Summary Get profile
// @Description Retrieves the single profile row
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 404 {object} ErrorResponse "Not Found - No profile exists yet"
// @Router /api/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Profile not found"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile upserts the site owner's profile
// @Summary Update profile
// @Description Overwrites the profile in place, or creates it when absent
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile data"
// @Success 200 {object} models.Profile "Stored profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid profile data"
// @Router /api/profile [post]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var profile models.Profile
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := profile.Validate(); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		updated, err := h.profileRepo.Upsert(&profile)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "profile", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}
