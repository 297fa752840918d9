package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type configHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newConfigHandler(db database.Database) configHandler {
	logger := log.With().Str("handlerName", "configHandler").Logger()
	return configHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// configRequest carries the visibility flags; omitted fields keep
// their stored (or default) value.
type configRequest struct {
	ShowAdvantages *bool `json:"showAdvantages"`
	ShowFeatures   *bool `json:"showFeatures"`
	ShowWorkflow   *bool `json:"showWorkflow"`
	ShowTeam       *bool `json:"showTeam"`
	ShowContact    *bool `json:"showContact"`
}

func (req configRequest) applyTo(config *models.ProjectConfig) bool {
	changed := false
	if req.ShowAdvantages != nil {
		config.ShowAdvantages = *req.ShowAdvantages
		changed = true
	}
	if req.ShowFeatures != nil {
		config.ShowFeatures = *req.ShowFeatures
		changed = true
	}
	if req.ShowWorkflow != nil {
		config.ShowWorkflow = *req.ShowWorkflow
		changed = true
	}
	if req.ShowTeam != nil {
		config.ShowTeam = *req.ShowTeam
		changed = true
	}
	if req.ShowContact != nil {
		config.ShowContact = *req.ShowContact
		changed = true
	}
	return changed
}

func (h configHandler) getConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		exists, err := h.db.ProjectRepo().Exists(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		config, err := h.db.ConfigRepo().Find(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find config", "config", err))
			return
		}
		if config == nil {
			defaults := models.DefaultProjectConfig(projectID)
			config = &defaults
		}

		h.responder.WriteJSON(w, config)
	}
}

func (h configHandler) updateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req configRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("config", err))
			return
		}

		var config models.ProjectConfig
		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}

			current, err := tx.ConfigRepo().Find(projectID)
			if err != nil {
				return err
			}
			if current == nil {
				defaults := models.DefaultProjectConfig(projectID)
				current = &defaults
			}

			if !req.applyTo(current) {
				return errs.NewNothingToUpdateError()
			}

			if err := tx.ConfigRepo().Upsert(current); err != nil {
				return err
			}
			config = *current
			return nil
		})
		if err != nil {
			if errors.Is(err, database.ErrProjectMissing) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			if errs.IsNothingToUpdateError(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update config", "config", err))
			return
		}

		h.responder.WriteJSON(w, &config)
	}
}
