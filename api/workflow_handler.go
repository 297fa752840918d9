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

type workflowHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	store     *media.Store
	maxUpload int64
}

func newWorkflowHandler(db database.Database, store *media.Store, maxUpload int64) workflowHandler {
	logger := log.With().Str("handlerName", "workflowHandler").Logger()
	return workflowHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		store:     store,
		maxUpload: maxUpload,
	}
}

func (h workflowHandler) getWorkflowSteps() http.HandlerFunc {
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

		steps, err := h.db.WorkflowRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find workflow steps", "workflow steps", err))
			return
		}

		h.responder.WriteJSON(w, shapeWorkflowSteps(h.store, steps))
	}
}

func (h workflowHandler) createWorkflowStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := parseMultipart(r, h.maxUpload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title, err := requiredFormValue(r, "title")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		stepNumberRaw, err := requiredFormValue(r, "step_number")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		stepNumber, err := strconv.Atoi(stepNumberRaw)
		if err != nil || stepNumber < 1 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("step_number", "must be a positive integer"))
			return
		}

		step := models.WorkflowStep{
			ProjectID:  projectID,
			StepNumber: stepNumber,
			Title:      title,
		}
		if v := formValue(r, "description"); v != nil {
			step.Description = *v
		}

		savedFile := ""
		file, header, err := formFile(r, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if file != nil {
			defer file.Close()
			path, err := h.store.Save(media.KindImage, header.Filename, file)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
				return
			}
			step.ImageURL = path
			savedFile = path
		} else if v := formValue(r, "image_url"); v != nil {
			step.ImageURL = *v
		}

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			return tx.WorkflowRepo().Add(&step)
		})
		if err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			if errors.Is(err, database.ErrProjectMissing) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create workflow step", "workflow step", err))
			return
		}

		h.responder.WriteCreated(w, shapeWorkflowStep(h.store, &step))
	}
}

func (h workflowHandler) updateWorkflowStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.WorkflowRepo().FindByID(stepID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find workflow step", "workflow step", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("workflow step not found"))
			return
		}

		var patch models.WorkflowStepPatch
		savedFile := ""

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			if err := parseMultipart(r, h.maxUpload); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Title = formValue(r, "title")
			patch.Description = formValue(r, "description")
			patch.ImageURL = formValue(r, "image_url")

			if v := formValue(r, "step_number"); v != nil {
				stepNumber, err := strconv.Atoi(*v)
				if err != nil || stepNumber < 1 {
					h.responder.WriteError(w, errs.NewInvalidFieldError("step_number", "must be a positive integer"))
					return
				}
				patch.StepNumber = &stepNumber
			}

			file, header, err := formFile(r, "image")
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if file != nil {
				defer file.Close()
				path, err := h.store.Save(media.KindImage, header.Filename, file)
				if err != nil {
					h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
					return
				}
				patch.ImageURL = &path
				savedFile = path
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("workflow step", err))
				return
			}
			if patch.StepNumber != nil && *patch.StepNumber < 1 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("step_number", "must be a positive integer"))
				return
			}
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		if err := h.db.WorkflowRepo().Patch(stepID, changes); err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			h.responder.WriteError(w, wrapDatabaseError("update workflow step", "workflow step", err))
			return
		}

		if patch.ImageURL != nil && existing.ImageURL != "" && existing.ImageURL != *patch.ImageURL {
			h.store.Remove(existing.ImageURL)
		}

		updated, err := h.db.WorkflowRepo().FindByID(stepID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated workflow step", "workflow step", err))
			return
		}

		h.responder.WriteJSON(w, shapeWorkflowStep(h.store, updated))
	}
}

func (h workflowHandler) deleteWorkflowStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.WorkflowRepo().FindByID(stepID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find workflow step", "workflow step", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("workflow step not found"))
			return
		}

		h.store.Remove(existing.ImageURL)

		if err := h.db.WorkflowRepo().Delete(stepID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete workflow step", "workflow step", err))
			return
		}

		h.responder.WriteDeleted(w, "workflow step")
	}
}
