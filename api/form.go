package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/atelierweb/showcase-backend/errs"
	"github.com/go-chi/chi/v5"
)

// parseIDParam reads a chi URL parameter as a positive integer ID.
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// formValue returns a pointer to the form field's value, or nil when
// the field was not supplied at all. Distinguishing absent from empty
// is what makes partial multipart updates work.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}
	if values, ok := r.Form[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// requiredFormValue returns the field's value or a validation error
// naming the missing field.
func requiredFormValue(r *http.Request, key string) (string, error) {
	value := formValue(r, key)
	if value == nil || *value == "" {
		return "", errs.NewMissingRequiredFieldError(key)
	}
	return *value, nil
}

// formFile returns the single uploaded file for a field, or nil when
// none was sent.
func formFile(r *http.Request, key string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(key)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errs.NewMalformedPayloadError("multipart", err)
	}
	return file, header, nil
}

// parseMultipart parses the request's multipart body with the
// configured size ceiling.
func parseMultipart(r *http.Request, maxBytes int64) error {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return errs.NewMalformedPayloadError("multipart", err)
	}
	return nil
}
