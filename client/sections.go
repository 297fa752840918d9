package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

func (c *Client) ListSections(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	if err := c.doJSON(ctx, http.MethodGet, "/sections", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) CreateSection(ctx context.Context, name string) (*models.Section, error) {
	payload := map[string]string{"name": name}
	var section models.Section
	if err := c.doJSON(ctx, http.MethodPost, "/sections", payload, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) UpdateSection(ctx context.Context, sectionID uint, patch models.SectionPatch) (*models.Section, error) {
	var section models.Section
	path := fmt.Sprintf("/sections/%d", sectionID)
	if err := c.doJSON(ctx, http.MethodPut, path, patch, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) DeleteSection(ctx context.Context, sectionID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/sections/%d", sectionID), nil, nil)
}
