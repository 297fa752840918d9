package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/showcase-backend/auth"
	"github.com/atelierweb/showcase-backend/models"
)

func (e *testEnv) seedUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Name: "Tester", Email: email, Password: hashed, Role: models.RoleAdmin}
	require.NoError(t, e.db.UserRepo().Add(user))
	return user
}

func TestLoginAndVerify(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@test.local", "hunter2")

	rec := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "admin@test.local",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, rec, &result)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "admin@test.local", result.User.Email)

	rec = env.doJSON(t, http.MethodGet, "/verify", result.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var verified struct {
		User models.User `json:"user"`
	}
	decodeBody(t, rec, &verified)
	assert.Equal(t, "admin@test.local", verified.User.Email)
}

func TestLoginNeverEchoesPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@test.local", "hunter2")

	rec := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "admin@test.local",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	decodeBody(t, rec, &raw)
	user, ok := raw["user"].(map[string]any)
	require.True(t, ok)
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestLoginWrongPasswordAndUnknownEmailAnswerAlike(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@test.local", "hunter2")

	wrongPassword := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "admin@test.local",
		"password": "wrong",
	})
	unknownEmail := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "nobody@test.local",
		"password": "hunter2",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/login", "", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyRejectsDeletedUser(t *testing.T) {
	env := newTestEnv(t)

	// env.token names user 1, which does not exist in the database.
	rec := env.doJSON(t, http.MethodGet, "/verify", env.token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
