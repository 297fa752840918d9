package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

// AdvantageInput accepts any value for Icon; it is flattened to an
// opaque string before transmission.
type AdvantageInput struct {
	Title           string
	Description     string
	Icon            any
	Stat            string
	SectionTitle    *string
	SectionSubtitle *string
}

func (c *Client) ListAdvantages(ctx context.Context, projectID uint) ([]models.Advantage, error) {
	var advantages []models.Advantage
	path := fmt.Sprintf("/projects/%d/advantages", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &advantages); err != nil {
		return nil, err
	}
	return advantages, nil
}

func (c *Client) CreateAdvantage(ctx context.Context, projectID uint, input AdvantageInput) (*models.Advantage, error) {
	payload := map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"icon":        iconString(input.Icon),
		"stat":        input.Stat,
	}
	if input.SectionTitle != nil {
		payload["section_title"] = *input.SectionTitle
	}
	if input.SectionSubtitle != nil {
		payload["section_subtitle"] = *input.SectionSubtitle
	}

	var advantage models.Advantage
	path := fmt.Sprintf("/projects/%d/advantages", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &advantage); err != nil {
		return nil, err
	}
	return &advantage, nil
}

func (c *Client) UpdateAdvantage(ctx context.Context, advantageID uint, patch models.AdvantagePatch) (*models.Advantage, error) {
	var advantage models.Advantage
	path := fmt.Sprintf("/advantages/%d", advantageID)
	if err := c.doJSON(ctx, http.MethodPut, path, patch, &advantage); err != nil {
		return nil, err
	}
	return &advantage, nil
}

func (c *Client) DeleteAdvantage(ctx context.Context, advantageID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/advantages/%d", advantageID), nil, nil)
}
