package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestApiErrSentinelMatching(t *testing.T) {
	err := NewNothingToUpdateError()
	if !IsNothingToUpdateError(err) {
		t.Error("NewNothingToUpdateError must match its sentinel")
	}
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Error("errors.Is must see through ApiErr.Unwrap")
	}
}

func TestConflictUsesLegacyStatusCode(t *testing.T) {
	err := NewConflictError("section still owns projects")
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("conflict status = %d, want %d", err.StatusCode, http.StatusBadRequest)
	}
	if !IsConflict(err) {
		t.Error("conflict error must match ErrConflict")
	}
}

func TestGetFullErrorIncludesCauseChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalErrorWithCause("failed to store image", cause)

	full := err.GetFullError()
	if full != "failed to store image -> connection refused" {
		t.Errorf("full error = %q", full)
	}
	// The client-facing message must not mention the cause.
	if err.Error() != "failed to store image" {
		t.Errorf("client message = %q", err.Error())
	}
}

func TestNewDatabaseErrorMapsDriverMessages(t *testing.T) {
	cases := []struct {
		driverMsg string
		status    int
	}{
		{"duplicate key value violates unique constraint", http.StatusConflict},
		{"UNIQUE constraint failed: users.email", http.StatusConflict},
		{"insert or update violates foreign key constraint", http.StatusBadRequest},
		{"record not found", http.StatusNotFound},
		{"connection reset by peer", http.StatusServiceUnavailable},
		{"something else entirely", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := NewDatabaseError("create", "user", errors.New(tc.driverMsg))
		if err.StatusCode != tc.status {
			t.Errorf("NewDatabaseError(%q).StatusCode = %d, want %d", tc.driverMsg, err.StatusCode, tc.status)
		}
	}
}

func TestValidationErrorsCarryField(t *testing.T) {
	err := NewMissingRequiredFieldError("title")
	if err.Field != "title" {
		t.Errorf("field = %q, want title", err.Field)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", err.StatusCode)
	}

	err = NewInvalidFieldError("section_id", "section does not exist")
	if err.Field != "section_id" || err.Details != "section does not exist" {
		t.Errorf("invalid field error = %+v", err)
	}
}
