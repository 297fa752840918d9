package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

// ConfigUpdate carries the visibility flags to change; nil means leave
// alone.
type ConfigUpdate struct {
	ShowAdvantages *bool `json:"showAdvantages,omitempty"`
	ShowFeatures   *bool `json:"showFeatures,omitempty"`
	ShowWorkflow   *bool `json:"showWorkflow,omitempty"`
	ShowTeam       *bool `json:"showTeam,omitempty"`
	ShowContact    *bool `json:"showContact,omitempty"`
}

func (c *Client) GetConfig(ctx context.Context, projectID uint) (*models.ProjectConfig, error) {
	var config models.ProjectConfig
	path := fmt.Sprintf("/projects/%d/config", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Client) UpdateConfig(ctx context.Context, projectID uint, update ConfigUpdate) (*models.ProjectConfig, error) {
	var config models.ProjectConfig
	path := fmt.Sprintf("/projects/%d/config", projectID)
	if err := c.doJSON(ctx, http.MethodPut, path, update, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
