package client

import (
	"context"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token and remembers it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/login", payload, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Verify confirms the stored credential and returns its user.
func (c *Client) Verify(ctx context.Context) (*models.User, error) {
	var result struct {
		User models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

type HealthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
