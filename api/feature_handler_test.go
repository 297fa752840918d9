package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
)

func TestFeatureCreateWithVideoUpload(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doMultipart(t, http.MethodPost, fmt.Sprintf("/projects/%d/features", project.ID), env.token,
		map[string]string{
			"title":      "Live demo",
			"subtitle":   "Watch it move",
			"icon_key":   "play",
			"media_type": models.MediaTypeVideo,
		},
		map[string]testUpload{
			"media": {filename: "demo.mp4", content: "video-bytes"},
		})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Feature
	decodeBody(t, rec, &created)
	assert.Equal(t, "Live demo", created.Title)
	assert.Equal(t, models.MediaTypeVideo, created.MediaType)
	// Videos land in the videos partition, and reads carry the origin.
	assert.True(t, strings.HasPrefix(created.MediaURL, testOrigin+media.MountPath+"/videos/"), created.MediaURL)
}

func TestFeatureCreateWithPriorUploadPath(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doMultipart(t, http.MethodPost, fmt.Sprintf("/projects/%d/features", project.ID), env.token,
		map[string]string{
			"title":      "Screenshot",
			"media_type": models.MediaTypeImage,
			"media_url":  "/uploads/images/prior.png",
		}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := env.db.FeatureRepo().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "/uploads/images/prior.png", stored[0].MediaURL)
}

func TestFeatureCreateRejectsBadMediaType(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doMultipart(t, http.MethodPost, fmt.Sprintf("/projects/%d/features", project.ID), env.token,
		map[string]string{"title": "x", "media_type": "hologram"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	features, err := env.db.FeatureRepo().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestFeaturePartialUpdateJSON(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	feature := &models.Feature{
		ProjectID: project.ID,
		Title:     "Live demo",
		Subtitle:  "Watch it move",
		MediaType: models.MediaTypeImage,
		MediaURL:  "/uploads/images/old.png",
	}
	require.NoError(t, env.db.FeatureRepo().Add(feature))

	rec := env.doJSON(t, http.MethodPut, fmt.Sprintf("/features/%d", feature.ID), env.token,
		map[string]string{"title": "Recorded demo"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Feature
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Recorded demo", updated.Title)
	assert.Equal(t, "Watch it move", updated.Subtitle)
}

func TestFeatureDeleteRemovesStoredMedia(t *testing.T) {
	env := newTestEnv(t)
	section := env.seedSection(t, "Robotics")
	project := env.seedProject(t, section.ID, "arm")

	rec := env.doMultipart(t, http.MethodPost, fmt.Sprintf("/projects/%d/features", project.ID), env.token,
		map[string]string{"title": "Shot", "media_type": models.MediaTypeImage},
		map[string]testUpload{
			"media": {filename: "shot.png", content: "png-bytes"},
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := env.db.FeatureRepo().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.True(t, env.storedFileExists(stored[0].MediaURL))

	rec = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/features/%d", stored[0].ID), env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.storedFileExists(stored[0].MediaURL))
}
