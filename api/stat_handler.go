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

type statHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newStatHandler(db database.Database) statHandler {
	logger := log.With().Str("handlerName", "statHandler").Logger()
	return statHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

func (h statHandler) getStats() http.HandlerFunc {
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

		stats, err := h.db.StatRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find stats", "stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

func (h statHandler) createStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var stat models.Stat
		if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("stat", err))
			return
		}
		if stat.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		stat.ID = 0
		stat.ProjectID = projectID

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			return tx.StatRepo().Add(&stat)
		})
		if errors.Is(err, database.ErrProjectMissing) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create stat", "stat", err))
			return
		}

		h.responder.WriteCreated(w, &stat)
	}
}

func (h statHandler) updateStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statID, err := parseIDParam(r, "statID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.StatPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("stat", err))
			return
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		existing, err := h.db.StatRepo().FindByID(statID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find stat", "stat", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("stat not found"))
			return
		}

		if err := h.db.StatRepo().Patch(statID, changes); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update stat", "stat", err))
			return
		}

		updated, err := h.db.StatRepo().FindByID(statID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated stat", "stat", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h statHandler) deleteStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statID, err := parseIDParam(r, "statID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.StatRepo().FindByID(statID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find stat", "stat", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("stat not found"))
			return
		}

		if err := h.db.StatRepo().Delete(statID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete stat", "stat", err))
			return
		}

		h.responder.WriteDeleted(w, "stat")
	}
}
