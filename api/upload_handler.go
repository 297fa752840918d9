package api

import (
	"net/http"

	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/media"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *media.Store
	maxUpload int64
}

func newUploadHandler(store *media.Store, maxUpload int64) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()
	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		maxUpload: maxUpload,
	}
}

type uploadResponse struct {
	FileURL string `json:"fileUrl"`
}

// upload stores a standalone file and returns its relative path so a
// later create or update call can reference it.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r, h.maxUpload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		file, header, err := formFile(r, "file")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if file == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		path, err := h.store.Save(media.KindForFilename(header.Filename), header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store file", err))
			return
		}

		h.responder.WriteCreated(w, uploadResponse{FileURL: path})
	}
}
