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

type advantageHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newAdvantageHandler(db database.Database) advantageHandler {
	logger := log.With().Str("handlerName", "advantageHandler").Logger()
	return advantageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

type advantageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Stat        string `json:"stat"`

	// Heading of the advantages block; persisted on the project row.
	SectionTitle    *string `json:"section_title,omitempty"`
	SectionSubtitle *string `json:"section_subtitle,omitempty"`
}

func (h advantageHandler) getAdvantages() http.HandlerFunc {
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

		advantages, err := h.db.AdvantageRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find advantages", "advantages", err))
			return
		}

		h.responder.WriteJSON(w, advantages)
	}
}

func (h advantageHandler) createAdvantage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req advantageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("advantage", err))
			return
		}

		for field, value := range map[string]string{
			"title":       req.Title,
			"description": req.Description,
			"stat":        req.Stat,
		} {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		advantage := models.Advantage{
			ProjectID:   projectID,
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
			Stat:        req.Stat,
		}

		heading := models.AdvantagePatch{
			SectionTitle:    req.SectionTitle,
			SectionSubtitle: req.SectionSubtitle,
		}.HeadingChanges()

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			if err := tx.AdvantageRepo().Add(&advantage); err != nil {
				return err
			}
			return tx.ProjectRepo().PatchHeading(projectID, heading)
		})
		if errors.Is(err, database.ErrProjectMissing) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create advantage", "advantage", err))
			return
		}

		h.responder.WriteCreated(w, &advantage)
	}
}

func (h advantageHandler) updateAdvantage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advantageID, err := parseIDParam(r, "advantageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.AdvantagePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("advantage", err))
			return
		}

		changes := patch.Changes()
		heading := patch.HeadingChanges()
		if len(changes) == 0 && len(heading) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		existing, err := h.db.AdvantageRepo().FindByID(advantageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find advantage", "advantage", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("advantage not found"))
			return
		}

		err = h.db.Transaction(func(tx database.Database) error {
			if len(changes) > 0 {
				if err := tx.AdvantageRepo().Patch(advantageID, changes); err != nil {
					return err
				}
			}
			return tx.ProjectRepo().PatchHeading(existing.ProjectID, heading)
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update advantage", "advantage", err))
			return
		}

		updated, err := h.db.AdvantageRepo().FindByID(advantageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated advantage", "advantage", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h advantageHandler) deleteAdvantage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advantageID, err := parseIDParam(r, "advantageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.AdvantageRepo().FindByID(advantageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find advantage", "advantage", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("advantage not found"))
			return
		}

		if err := h.db.AdvantageRepo().Delete(advantageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete advantage", "advantage", err))
			return
		}

		h.responder.WriteDeleted(w, "advantage")
	}
}
