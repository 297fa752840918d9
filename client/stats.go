package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

type StatInput struct {
	IconKey     string `json:"icon_key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

func (c *Client) ListStats(ctx context.Context, projectID uint) ([]models.Stat, error) {
	var stats []models.Stat
	path := fmt.Sprintf("/projects/%d/stats", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) CreateStat(ctx context.Context, projectID uint, input StatInput) (*models.Stat, error) {
	var stat models.Stat
	path := fmt.Sprintf("/projects/%d/stats", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, input, &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

func (c *Client) UpdateStat(ctx context.Context, statID uint, patch models.StatPatch) (*models.Stat, error) {
	var stat models.Stat
	path := fmt.Sprintf("/stats/%d", statID)
	if err := c.doJSON(ctx, http.MethodPut, path, patch, &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

func (c *Client) DeleteStat(ctx context.Context, statID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/stats/%d", statID), nil, nil)
}
