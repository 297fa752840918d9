package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/atelierweb/showcase-backend/auth"
	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
)

const testOrigin = "http://test.local"

type testEnv struct {
	handler http.Handler
	db      database.Database
	store   *media.Store
	tokens  *auth.TokenService
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	db := database.New(gdb)

	store, err := media.NewStore(t.TempDir(), testOrigin)
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret")
	token, err := tokens.Generate(1, models.RoleAdmin)
	require.NoError(t, err)

	handler := newRouter(db, store, tokens, withConfig(map[string]string{}), withStartupTime(time.Now()))

	return &testEnv{
		handler: handler,
		db:      db,
		store:   store,
		tokens:  tokens,
		token:   token,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

type testUpload struct {
	filename string
	content  string
}

func (e *testEnv) doMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string]testUpload) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for key, upload := range files {
		part, err := w.CreateFormFile(key, upload.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(upload.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func (e *testEnv) seedSection(t *testing.T, name string) *models.Section {
	t.Helper()
	section := &models.Section{Name: name}
	require.NoError(t, e.db.SectionRepo().Add(section))
	return section
}

func (e *testEnv) seedProject(t *testing.T, sectionID uint, title string) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:     title,
		Category:  "web",
		Image:     "/uploads/images/seed.png",
		SectionID: sectionID,
	}
	require.NoError(t, e.db.ProjectRepo().Add(project))
	return project
}
