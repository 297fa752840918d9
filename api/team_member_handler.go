package api

import (
	"bytes"
	"encoding/base64"
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

type teamMemberHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	store     *media.Store
	maxUpload int64
}

func newTeamMemberHandler(db database.Database, store *media.Store, maxUpload int64) teamMemberHandler {
	logger := log.With().Str("handlerName", "teamMemberHandler").Logger()
	return teamMemberHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		store:     store,
		maxUpload: maxUpload,
	}
}

var dataURIExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// storeDataURI normalizes a base64 data URI into a stored file and
// returns its relative path.
func (h teamMemberHandler) storeDataURI(uri string) (string, error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", errs.NewInvalidFieldError("avatar", "unsupported data URI")
	}

	mimeType := strings.TrimSuffix(meta, ";base64")
	ext, ok := dataURIExtensions[mimeType]
	if !ok {
		return "", errs.NewInvalidFieldError("avatar", "unsupported data URI media type")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errs.NewInvalidFieldError("avatar", "invalid base64 payload")
	}

	path, err := h.store.Save(media.KindImage, "avatar"+ext, bytes.NewReader(decoded))
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to store avatar", err)
	}
	return path, nil
}

// resolveAvatar returns the relative avatar path from an uploaded file,
// a data URI, or a plain path value. savedFile is non-empty when this
// call wrote a file.
func (h teamMemberHandler) resolveAvatar(r *http.Request) (avatar, savedFile string, err error) {
	file, header, err := formFile(r, "avatar")
	if err != nil {
		return "", "", err
	}
	if file != nil {
		defer file.Close()
		path, err := h.store.Save(media.KindImage, header.Filename, file)
		if err != nil {
			return "", "", errs.NewInternalErrorWithCause("failed to store avatar", err)
		}
		return path, path, nil
	}

	if v := formValue(r, "avatar"); v != nil && *v != "" {
		if strings.HasPrefix(*v, "data:") {
			path, err := h.storeDataURI(*v)
			if err != nil {
				return "", "", err
			}
			return path, path, nil
		}
		return *v, "", nil
	}

	return "", "", nil
}

func (h teamMemberHandler) getTeamMembers() http.HandlerFunc {
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

		members, err := h.db.TeamMemberRepo().FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team members", "team members", err))
			return
		}

		h.responder.WriteJSON(w, shapeTeamMembers(h.store, members))
	}
}

func (h teamMemberHandler) createTeamMember() http.HandlerFunc {
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

		name, err := requiredFormValue(r, "name")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		role, err := requiredFormValue(r, "role")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member := models.TeamMember{
			ProjectID: projectID,
			Name:      name,
			Role:      role,
		}
		if v := formValue(r, "bio"); v != nil {
			member.Bio = *v
		}

		avatar, savedFile, err := h.resolveAvatar(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		member.Avatar = avatar

		err = h.db.Transaction(func(tx database.Database) error {
			exists, err := tx.ProjectRepo().Exists(projectID)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrProjectMissing
			}
			return tx.TeamMemberRepo().Add(&member)
		})
		if err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			if errors.Is(err, database.ErrProjectMissing) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create team member", "team member", err))
			return
		}

		h.responder.WriteCreated(w, shapeTeamMember(h.store, &member))
	}
}

func (h teamMemberHandler) updateTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.TeamMemberRepo().FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		var patch models.TeamMemberPatch
		savedFile := ""

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			if err := parseMultipart(r, h.maxUpload); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Name = formValue(r, "name")
			patch.Role = formValue(r, "role")
			patch.Bio = formValue(r, "bio")

			avatar, saved, err := h.resolveAvatar(r)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if avatar != "" {
				patch.Avatar = &avatar
				savedFile = saved
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("team member", err))
				return
			}
			if patch.Avatar != nil && strings.HasPrefix(*patch.Avatar, "data:") {
				path, err := h.storeDataURI(*patch.Avatar)
				if err != nil {
					h.responder.WriteError(w, err)
					return
				}
				patch.Avatar = &path
				savedFile = path
			}
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			h.responder.WriteError(w, errs.NewNothingToUpdateError())
			return
		}

		if err := h.db.TeamMemberRepo().Patch(memberID, changes); err != nil {
			if savedFile != "" {
				h.store.Remove(savedFile)
			}
			h.responder.WriteError(w, wrapDatabaseError("update team member", "team member", err))
			return
		}

		if patch.Avatar != nil && existing.Avatar != "" && existing.Avatar != *patch.Avatar {
			h.store.Remove(existing.Avatar)
		}

		updated, err := h.db.TeamMemberRepo().FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, shapeTeamMember(h.store, updated))
	}
}

func (h teamMemberHandler) deleteTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.db.TeamMemberRepo().FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		h.store.Remove(existing.Avatar)

		if err := h.db.TeamMemberRepo().Delete(memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete team member", "team member", err))
			return
		}

		h.responder.WriteDeleted(w, "team member")
	}
}
