package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type sectionHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	store     *media.Store
}

func newSectionHandler(db database.Database, store *media.Store) sectionHandler {
	logger := log.With().Str("handlerName", "sectionHandler").Logger()
	return sectionHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		store:     store,
	}
}

// getAllSections returns every section with its projects.
func (h sectionHandler) getAllSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sections, err := h.db.SectionRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find sections", "sections", err))
			return
		}

		h.responder.WriteJSON(w, shapeSections(h.store, sections))
	}
}

func (h sectionHandler) createSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("section", err))
			return
		}
		if body.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		section := models.Section{Name: body.Name, Projects: []models.Project{}}
		if err := h.db.SectionRepo().Add(&section); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create section", "section", err))
			return
		}

		h.responder.WriteCreated(w, &section)
	}
}

func (h sectionHandler) updateSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.SectionPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("section", err))
			return
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.SectionRepo().Exists(sectionID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrSectionMissing
			}
			return tx.SectionRepo().Patch(sectionID, changes)
		})
		if errors.Is(err, database.ErrSectionMissing) {
			h.responder.WriteError(w, errs.NewNotFoundError("section not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update section", "section", err))
			return
		}

		updated, err := h.db.SectionRepo().FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated section", "section", err))
			return
		}

		h.responder.WriteJSON(w, shapeSection(h.store, updated))
	}
}

// deleteSection hard-deletes a section. The delete is refused while any
// project still references it; the existence check and delete run in
// one transaction so a concurrent project create cannot slip between
// them.
func (h sectionHandler) deleteSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.SectionRepo().Exists(sectionID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrSectionMissing
			}

			count, err := tx.ProjectRepo().CountBySection(sectionID)
			if err != nil {
				return err
			}
			if count > 0 {
				return database.ErrSectionNotEmpty
			}

			return tx.SectionRepo().Delete(sectionID)
		})
		switch {
		case errors.Is(err, database.ErrSectionMissing):
			h.responder.WriteError(w, errs.NewNotFoundError("section not found"))
			return
		case errors.Is(err, database.ErrSectionNotEmpty):
			h.responder.WriteError(w, errs.NewConflictError("section still owns projects"))
			return
		case err != nil:
			h.responder.WriteError(w, wrapDatabaseError("delete section", "section", err))
			return
		}

		h.responder.WriteDeleted(w, "section")
	}
}
