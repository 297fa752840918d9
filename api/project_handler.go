package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	store     *media.Store
	maxUpload int64
}

func newProjectHandler(db database.Database, store *media.Store, maxUpload int64) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()
	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		store:     store,
		maxUpload: maxUpload,
	}
}

// getAllProjects retrieves all projects with their owning section.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.db.ProjectRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, shapeProjects(h.store, projects))
	}
}

// getProject retrieves a specific project by ID.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, shapeProject(h.store, project))
	}
}

// getLastProject retrieves the most recently created project.
func (h projectHandler) getLastProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.db.ProjectRepo().FindLast()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find last project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no projects yet"))
			return
		}

		h.responder.WriteJSON(w, shapeProject(h.store, project))
	}
}

// createProject accepts a multipart form with title, description,
// category, section_id and either an uploaded image file or an image
// path from a prior upload. The owning section must exist; the check
// and the insert share a transaction.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r, h.maxUpload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title, err := requiredFormValue(r, "title")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		category, err := requiredFormValue(r, "category")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		sectionIDRaw, err := requiredFormValue(r, "section_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		sectionID, parseErr := strconv.ParseUint(sectionIDRaw, 10, 64)
		if parseErr != nil || sectionID == 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("section_id", "must be a positive integer"))
			return
		}

		description := ""
		if v := formValue(r, "description"); v != nil {
			description = *v
		}

		// Image comes in as a file, or as a path returned by a prior
		// /projects/upload call. One of the two is required.
		imagePath, savedFile, err := h.resolveImage(r, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imagePath == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		project := models.Project{
			Title:       title,
			Description: description,
			Image:       imagePath,
			Category:    category,
			SectionID:   uint(sectionID),
		}

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.SectionRepo().Exists(uint(sectionID))
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrSectionMissing
			}
			return tx.ProjectRepo().Add(&project)
		})
		if err != nil {
			// The file was written before the row; compensate so a
			// failed create does not strand it.
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			if errors.Is(err, database.ErrSectionMissing) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("section_id", "section does not exist"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		created, err := h.db.ProjectRepo().FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.responder.WriteCreated(w, shapeProject(h.store, created))
	}
}

// updateProject applies a partial update. Multipart bodies may carry a
// replacement image file; JSON bodies patch plain fields only.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var patch models.ProjectPatch
		savedFile := ""

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			if err := parseMultipart(r, h.maxUpload); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Title = formValue(r, "title")
			patch.Description = formValue(r, "description")
			patch.Category = formValue(r, "category")
			patch.AdvantagesTitle = formValue(r, "advantages_title")
			patch.AdvantagesSubtitle = formValue(r, "advantages_subtitle")
			if raw := formValue(r, "section_id"); raw != nil {
				sectionID, parseErr := strconv.ParseUint(*raw, 10, 64)
				if parseErr != nil || sectionID == 0 {
					h.responder.WriteError(w, errs.NewInvalidFieldError("section_id", "must be a positive integer"))
					return
				}
				id := uint(sectionID)
				patch.SectionID = &id
			}

			imagePath, saved, err := h.resolveImage(r, "image")
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if imagePath != "" {
				patch.Image = &imagePath
				savedFile = saved
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
				return
			}
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		err = h.db.Transaction(func(tx database.Database) error {
			if patch.SectionID != nil {
				exists, err := tx.SectionRepo().Exists(*patch.SectionID)
				if err != nil {
					return err
				}
				if !exists {
					return database.ErrSectionMissing
				}
			}
			return tx.ProjectRepo().Patch(projectID, changes)
		})
		if err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			if errors.Is(err, database.ErrSectionMissing) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("section_id", "section does not exist"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		// Replaced image: the old file is no longer referenced.
		if patch.Image != nil && existing.Image != "" && existing.Image != *patch.Image {
			h.store.Remove(existing.Image)
		}

		updated, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, shapeProject(h.store, updated))
	}
}

// deleteProject removes the project, its sub-entities, and the files
// backing them. File removal is best-effort and never blocks the row
// deletes.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.removeProjectFiles(project)

		err = h.db.Transaction(func(tx database.Database) error {
			if err := tx.AdvantageRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.FeatureRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.StatRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.ExtraRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.TeamMemberRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.WorkflowRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			if err := tx.ConfigRepo().DeleteByProject(projectID); err != nil {
				return err
			}
			return tx.ProjectRepo().Delete(projectID)
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteDeleted(w, "project")
	}
}

// removeProjectFiles best-effort deletes every stored file referenced
// by the project or its sub-entities. Absent files are ignored.
func (h projectHandler) removeProjectFiles(project *models.Project) {
	h.store.Remove(project.Image)

	if features, err := h.db.FeatureRepo().FindByProject(project.ID); err == nil {
		for _, f := range features {
			h.store.Remove(f.MediaURL)
		}
	}
	if members, err := h.db.TeamMemberRepo().FindByProject(project.ID); err == nil {
		for _, m := range members {
			h.store.Remove(m.Avatar)
		}
	}
	if steps, err := h.db.WorkflowRepo().FindByProject(project.ID); err == nil {
		for _, s := range steps {
			h.store.Remove(s.ImageURL)
		}
	}
}

// resolveImage returns the relative path for an image field: a freshly
// saved upload when a file was sent, otherwise the supplied path value.
// savedFile is non-empty only when this call wrote a new file.
func (h projectHandler) resolveImage(r *http.Request, field string) (imagePath, savedFile string, err error) {
	file, header, err := formFile(r, field)
	if err != nil {
		return "", "", err
	}
	if file != nil {
		defer file.Close()
		path, err := h.store.Save(media.KindImage, header.Filename, file)
		if err != nil {
			return "", "", errs.NewInternalErrorWithCause("failed to store image", err)
		}
		return path, path, nil
	}
	if v := formValue(r, field); v != nil {
		return *v, "", nil
	}
	return "", "", nil
}
