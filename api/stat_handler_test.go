package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/showcase-backend/models"
)

func TestStatCreateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	payload := map[string]string{
		"icon_key":    "users",
		"title":       "Active users",
		"description": "Monthly",
		"text":        "12k",
	}
	rec := env.doJSON(t, http.MethodPost, fmt.Sprintf("/projects/%d/stats", project.ID), env.token, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.doJSON(t, http.MethodGet, fmt.Sprintf("/projects/%d/stats", project.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Stat
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "users", listed[0].IconKey)
	assert.Equal(t, "Active users", listed[0].Title)
	assert.Equal(t, "Monthly", listed[0].Description)
	assert.Equal(t, "12k", listed[0].Text)
}

func TestStatCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doJSON(t, http.MethodPost, fmt.Sprintf("/projects/%d/stats", project.ID), env.token,
		map[string]string{"icon_key": "users"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatCreateIgnoresClientSuppliedIDs(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")
	other := env.seedProject(t, section.ID, "other")

	// Client-sent id and project_id must not override the server's.
	rec := env.doJSON(t, http.MethodPost, fmt.Sprintf("/projects/%d/stats", project.ID), env.token,
		map[string]any{"id": 777, "project_id": other.ID, "title": "Active users"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Stat
	decodeBody(t, rec, &created)
	assert.NotEqual(t, uint(777), created.ID)
	assert.Equal(t, project.ID, created.ProjectID)
}

func TestExtraCRUD(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doJSON(t, http.MethodPost, fmt.Sprintf("/projects/%d/extras", project.ID), env.token,
		map[string]string{"title": "Open source", "description": "MIT licensed", "stat": "1.2k stars"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.ProjectExtra
	decodeBody(t, rec, &created)
	require.NotZero(t, created.ID)

	rec = env.doJSON(t, http.MethodPut, fmt.Sprintf("/extras/%d", created.ID), env.token,
		map[string]string{"stat": "2k stars"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.ProjectExtra
	decodeBody(t, rec, &updated)
	assert.Equal(t, "2k stars", updated.Stat)
	assert.Equal(t, "Open source", updated.Title)

	rec = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/extras/%d", created.ID), env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	extras, err := env.db.ExtraRepo().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, extras)
}

func TestExtraCreateLinkedToFeature(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	feature := &models.Feature{ProjectID: project.ID, Title: "demo", MediaType: models.MediaTypeImage}
	require.NoError(t, env.db.FeatureRepo().Add(feature))

	rec := env.doJSON(t, http.MethodPost, fmt.Sprintf("/projects/%d/extras", project.ID), env.token,
		map[string]any{"title": "Latency", "feature_id": feature.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.ProjectExtra
	decodeBody(t, rec, &created)
	require.NotNil(t, created.FeatureID)
	assert.Equal(t, feature.ID, *created.FeatureID)
}
