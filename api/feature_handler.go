package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type featureHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	store     *media.Store
	maxUpload int64
}

func newFeatureHandler(db database.Database, store *media.Store, maxUpload int64) featureHandler {
	logger := log.With().Str("handlerName", "featureHandler").Logger()
	return featureHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		store:     store,
		maxUpload: maxUpload,
	}
}

func kindForMediaType(mediaType string) media.Kind {
	if mediaType == models.MediaTypeVideo {
		return media.KindVideo
	}
	return media.KindImage
}

func validMediaType(mediaType string) bool {
	return mediaType == models.MediaTypeImage || mediaType == models.MediaTypeVideo
}

func (h featureHandler) getFeatures() http.HandlerFunc {
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

		features, err := h.db.FeatureRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find features", "features", err))
			return
		}

		h.responder.WriteJSON(w, shapeFeatures(h.store, features))
	}
}

// createFeature accepts a multipart form: title, subtitle, icon_key,
// media_type and either an uploaded media file or a media_url path from
// a prior /features/upload call.
func (h featureHandler) createFeature() http.HandlerFunc {
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
		mediaType, err := requiredFormValue(r, "media_type")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !validMediaType(mediaType) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("media_type", "must be image or video"))
			return
		}

		feature := models.Feature{
			ProjectID: projectID,
			Title:     title,
			MediaType: mediaType,
		}
		if v := formValue(r, "subtitle"); v != nil {
			feature.Subtitle = *v
		}
		if v := formValue(r, "icon_key"); v != nil {
			feature.IconKey = *v
		}

		savedFile := ""
		file, header, err := formFile(r, "media")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if file != nil {
			defer file.Close()
			path, err := h.store.Save(kindForMediaType(mediaType), header.Filename, file)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store media", err))
				return
			}
			feature.MediaURL = path
			savedFile = path
		} else if v := formValue(r, "media_url"); v != nil {
			feature.MediaURL = *v
		}

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			return tx.FeatureRepo().Add(&feature)
		})
		if err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			if errors.Is(err, database.ErrProjectMissing) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create feature", "feature", err))
			return
		}

		h.responder.WriteCreated(w, shapeFeature(h.store, &feature))
	}
}

func (h featureHandler) updateFeature() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featureID, err := parseIDParam(r, "featureID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.FeatureRepo().FindByID(featureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feature", "feature", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("feature not found"))
			return
		}

		var patch models.FeaturePatch
		savedFile := ""

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			if err := parseMultipart(r, h.maxUpload); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Title = formValue(r, "title")
			patch.Subtitle = formValue(r, "subtitle")
			patch.IconKey = formValue(r, "icon_key")
			patch.MediaType = formValue(r, "media_type")
			patch.MediaURL = formValue(r, "media_url")

			file, header, err := formFile(r, "media")
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if file != nil {
				defer file.Close()
				mediaType := existing.MediaType
				if patch.MediaType != nil {
					mediaType = *patch.MediaType
				}
				path, err := h.store.Save(kindForMediaType(mediaType), header.Filename, file)
				if err != nil {
					h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store media", err))
					return
				}
				patch.MediaURL = &path
				savedFile = path
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("feature", err))
				return
			}
		}

		if patch.MediaType != nil && !validMediaType(*patch.MediaType) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("media_type", "must be image or video"))
			return
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		if err := h.db.FeatureRepo().Patch(featureID, changes); err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			h.responder.WriteError(w, wrapDatabaseError("update feature", "feature", err))
			return
		}

		if patch.MediaURL != nil && existing.MediaURL != "" && existing.MediaURL != *patch.MediaURL {
			h.store.Remove(existing.MediaURL)
		}

		updated, err := h.db.FeatureRepo().FindByID(featureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated feature", "feature", err))
			return
		}

		h.responder.WriteJSON(w, shapeFeature(h.store, updated))
	}
}

func (h featureHandler) deleteFeature() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featureID, err := parseIDParam(r, "featureID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.FeatureRepo().FindByID(featureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feature", "feature", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("feature not found"))
			return
		}

		h.store.Remove(existing.MediaURL)

		if err := h.db.FeatureRepo().Delete(featureID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete feature", "feature", err))
			return
		}

		h.responder.WriteDeleted(w, "feature")
	}
}
