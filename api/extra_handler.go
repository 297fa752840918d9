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

type extraHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newExtraHandler(db database.Database) extraHandler {
	logger := log.With().Str("handlerName", "extraHandler").Logger()
	return extraHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

func (h extraHandler) getExtras() http.HandlerFunc {
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

		extras, err := h.db.ExtraRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find extras", "extras", err))
			return
		}

		h.responder.WriteJSON(w, extras)
	}
}

func (h extraHandler) createExtra() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var extra models.ProjectExtra
		if err := json.NewDecoder(r.Body).Decode(&extra); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("extra", err))
			return
		}
		if extra.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		extra.ID = 0
		extra.ProjectID = projectID

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			return tx.ExtraRepo().Add(&extra)
		})
		if errors.Is(err, database.ErrProjectMissing) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create extra", "extra", err))
			return
		}

		h.responder.WriteCreated(w, &extra)
	}
}

func (h extraHandler) updateExtra() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		extraID, err := parseIDParam(r, "extraID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectExtraPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("extra", err))
			return
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		existing, err := h.db.ExtraRepo().FindByID(extraID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find extra", "extra", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("extra not found"))
			return
		}

		if err := h.db.ExtraRepo().Patch(extraID, changes); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update extra", "extra", err))
			return
		}

		updated, err := h.db.ExtraRepo().FindByID(extraID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated extra", "extra", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h extraHandler) deleteExtra() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		extraID, err := parseIDParam(r, "extraID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.ExtraRepo().FindByID(extraID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find extra", "extra", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("extra not found"))
			return
		}

		if err := h.db.ExtraRepo().Delete(extraID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete extra", "extra", err))
			return
		}

		h.responder.WriteDeleted(w, "extra")
	}
}
