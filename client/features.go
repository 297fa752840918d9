package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

// FeatureUpload is the multipart payload for creating a feature. Media
// takes precedence over MediaURL when both are set.
type FeatureUpload struct {
	Title     string
	Subtitle  string
	IconKey   string
	MediaType string
	Media     *FileUpload
	MediaURL  string
}

type FeatureUpdate struct {
	Title     *string
	Subtitle  *string
	IconKey   *string
	MediaType *string
	Media     *FileUpload
	MediaURL  *string
}

func (c *Client) ListFeatures(ctx context.Context, projectID uint) ([]models.Feature, error) {
	var features []models.Feature
	path := fmt.Sprintf("/projects/%d/features", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) CreateFeature(ctx context.Context, projectID uint, upload FeatureUpload) (*models.Feature, error) {
	var feature models.Feature
	path := fmt.Sprintf("/projects/%d/features", projectID)
	err := c.doForm(ctx, http.MethodPost, path, func(f *formWriter) error {
		f.field("title", upload.Title)
		f.field("media_type", upload.MediaType)
		if upload.Subtitle != "" {
			f.field("subtitle", upload.Subtitle)
		}
		if upload.IconKey != "" {
			f.field("icon_key", upload.IconKey)
		}
		if upload.Media != nil {
			f.file("media", upload.Media)
		} else if upload.MediaURL != "" {
			f.field("media_url", upload.MediaURL)
		}
		return f.close()
	}, &feature)
	if err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) UpdateFeature(ctx context.Context, featureID uint, update FeatureUpdate) (*models.Feature, error) {
	var feature models.Feature
	path := fmt.Sprintf("/features/%d", featureID)
	err := c.doForm(ctx, http.MethodPut, path, func(f *formWriter) error {
		f.optional("title", update.Title)
		f.optional("subtitle", update.Subtitle)
		f.optional("icon_key", update.IconKey)
		f.optional("media_type", update.MediaType)
		if update.Media != nil {
			f.file("media", update.Media)
		} else {
			f.optional("media_url", update.MediaURL)
		}
		return f.close()
	}, &feature)
	if err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) DeleteFeature(ctx context.Context, featureID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/features/%d", featureID), nil, nil)
}
