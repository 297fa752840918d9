package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
)

func (e *testEnv) storedFileExists(relativePath string) bool {
	full := filepath.Join(e.store.Root(), strings.TrimPrefix(relativePath, media.MountPath+"/"))
	_, err := os.Stat(full)
	return err == nil
}

func TestProjectCreateMultipart(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")

	rec := env.doMultipart(t, http.MethodPost, "/projects", env.token,
		map[string]string{
			"title":       "Robot Arm",
			"category":    "hardware",
			"description": "Six axes",
			"section_id":  fmt.Sprint(section.ID),
		},
		map[string]testUpload{
			"image": {filename: "arm.png", content: "png-bytes"},
		},
	)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Project
	decodeBody(t, rec, &created)
	assert.Equal(t, "Robot Arm", created.Title)
	assert.Equal(t, "hardware", created.Category)
	assert.Equal(t, section.ID, created.SectionID)
	// Read shapes prefix the public origin onto the stored path.
	assert.True(t, strings.HasPrefix(created.Image, testOrigin+media.MountPath+"/images/"), created.Image)

	stored, err := env.db.ProjectRepo().FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Image, media.MountPath+"/images/"), "row stores the relative path")
	assert.True(t, env.storedFileExists(stored.Image))
}

func TestProjectCreateMissingFieldsPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")

	complete := map[string]string{
		"title":      "Robot Arm",
		"category":   "hardware",
		"section_id": fmt.Sprint(section.ID),
		"image":      "/uploads/images/prior.png",
	}

	for _, missing := range []string{"title", "category", "section_id", "image"} {
		fields := map[string]string{}
		for k, v := range complete {
			if k != missing {
				fields[k] = v
			}
		}

		rec := env.doMultipart(t, http.MethodPost, "/projects", env.token, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "missing %s", missing)

		projects, err := env.db.ProjectRepo().FindAll()
		require.NoError(t, err)
		assert.Empty(t, projects, "missing %s must not persist a row", missing)
	}
}

func TestProjectCreateUnknownSectionRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doMultipart(t, http.MethodPost, "/projects", env.token,
		map[string]string{
			"title":      "Orphan",
			"category":   "web",
			"section_id": "999",
			"image":      "/uploads/images/prior.png",
		}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "section_id", body["field"])

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectCreateUnknownSectionCompensatesUpload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doMultipart(t, http.MethodPost, "/projects", env.token,
		map[string]string{
			"title":      "Orphan",
			"category":   "web",
			"section_id": "999",
		},
		map[string]testUpload{
			"image": {filename: "orphan.png", content: "bytes"},
		})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The file written before the failed insert must be cleaned up.
	entries, err := os.ReadDir(filepath.Join(env.store.Root(), "images"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProjectDeleteRemovesImageFile(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")

	rec := env.doMultipart(t, http.MethodPost, "/projects", env.token,
		map[string]string{
			"title":      "Robot Arm",
			"category":   "hardware",
			"section_id": fmt.Sprint(section.ID),
		},
		map[string]testUpload{
			"image": {filename: "arm.png", content: "png-bytes"},
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	decodeBody(t, rec, &created)

	stored, err := env.db.ProjectRepo().FindByID(created.ID)
	require.NoError(t, err)
	require.True(t, env.storedFileExists(stored.Image))

	rec = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/projects/%d", created.ID), env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.False(t, env.storedFileExists(stored.Image))
	gone, err := env.db.ProjectRepo().FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProjectDeleteSucceedsWhenFileAlreadyAbsent(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	// Seeded row references a path no file backs.
	project := env.seedProject(t, section.ID, "ghost")

	rec := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), env.token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	gone, err := env.db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProjectDeleteRemovesSubEntities(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	require.NoError(t, env.db.StatRepo().Add(&models.Stat{ProjectID: project.ID, Title: "users"}))
	require.NoError(t, env.db.AdvantageRepo().Add(&models.Advantage{ProjectID: project.ID, Title: "fast", Description: "d", Stat: "2x"}))

	rec := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats, err := env.db.StatRepo().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)
	advantages, err := env.db.AdvantageRepo().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, advantages)
}

func TestProjectUpdatePartialJSON(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doJSON(t, http.MethodPut, fmt.Sprintf("/projects/%d", project.ID), env.token,
		map[string]string{"title": "Robot Arm v2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Robot Arm v2", updated.Title)
	assert.Equal(t, "web", updated.Category, "unsupplied fields stay put")
}

func TestProjectUpdateRejectsUnknownSection(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doJSON(t, http.MethodPut, fmt.Sprintf("/projects/%d", project.ID), env.token,
		map[string]uint{"section_id": 999})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	unchanged, err := env.db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, section.ID, unchanged.SectionID)
}

func TestProjectGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/projects/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLastProject(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/projects/last", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "empty table has no last project")

	section := env.seedSection(t, "Robotics")
	env.seedProject(t, section.ID, "first")
	newest := env.seedProject(t, section.ID, "second")

	rec = env.doJSON(t, http.MethodGet, "/projects/last", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Project
	decodeBody(t, rec, &got)
	assert.Equal(t, newest.ID, got.ID)
	assert.Equal(t, "second", got.Title)
}
