package api

import (
	"encoding/json"
	"net/http"

	"github.com/atelierweb/showcase-backend/auth"
	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/errs"
	"github.com/atelierweb/showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	tokens    *auth.TokenService
}

func newAuthHandler(db database.Database, tokens *auth.TokenService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		tokens:    tokens,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// login exchanges email/password for a signed credential. Unknown email
// and wrong password get the same answer so accounts cannot be
// enumerated.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		user, err := h.db.UserRepo().FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil || !auth.CheckPassword(user.Password, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := h.tokens.Generate(user.ID, user.Role)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue credential", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, User: *user})
	}
}

// verify echoes the authenticated principal's user row. Reaching this
// handler means the auth gate already accepted the credential.
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.db.UserRepo().FindByID(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]any{"user": user})
	}
}
