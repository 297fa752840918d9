package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

type ExtraInput struct {
	FeatureID   *uint  `json:"feature_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Stat        string `json:"stat,omitempty"`
}

func (c *Client) ListExtras(ctx context.Context, projectID uint) ([]models.ProjectExtra, error) {
	var extras []models.ProjectExtra
	path := fmt.Sprintf("/projects/%d/extras", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

func (c *Client) CreateExtra(ctx context.Context, projectID uint, input ExtraInput) (*models.ProjectExtra, error) {
	var extra models.ProjectExtra
	path := fmt.Sprintf("/projects/%d/extras", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, input, &extra); err != nil {
		return nil, err
	}
	return &extra, nil
}

func (c *Client) UpdateExtra(ctx context.Context, extraID uint, patch models.ProjectExtraPatch) (*models.ProjectExtra, error) {
	var extra models.ProjectExtra
	path := fmt.Sprintf("/extras/%d", extraID)
	if err := c.doJSON(ctx, http.MethodPut, path, patch, &extra); err != nil {
		return nil, err
	}
	return &extra, nil
}

func (c *Client) DeleteExtra(ctx context.Context, extraID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/extras/%d", extraID), nil, nil)
}
