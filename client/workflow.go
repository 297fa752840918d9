package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/atelierweb/showcase-backend/models"
)

// WorkflowStepUpload is the multipart payload for adding a workflow
// step. Image takes precedence over ImageURL when both are set.
type WorkflowStepUpload struct {
	Title       string
	StepNumber  int
	Description string
	Image       *FileUpload
	ImageURL    string
}

type WorkflowStepUpdate struct {
	Title       *string
	StepNumber  *int
	Description *string
	Image       *FileUpload
	ImageURL    *string
}

func (c *Client) ListWorkflowSteps(ctx context.Context, projectID uint) ([]models.WorkflowStep, error) {
	var steps []models.WorkflowStep
	path := fmt.Sprintf("/projects/%d/workflow", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func (c *Client) CreateWorkflowStep(ctx context.Context, projectID uint, upload WorkflowStepUpload) (*models.WorkflowStep, error) {
	var step models.WorkflowStep
	path := fmt.Sprintf("/projects/%d/workflow", projectID)
	err := c.doForm(ctx, http.MethodPost, path, func(f *formWriter) error {
		f.field("title", upload.Title)
		f.field("step_number", strconv.Itoa(upload.StepNumber))
		if upload.Description != "" {
			f.field("description", upload.Description)
		}
		if upload.Image != nil {
			f.file("image", upload.Image)
		} else if upload.ImageURL != "" {
			f.field("image_url", upload.ImageURL)
		}
		return f.close()
	}, &step)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (c *Client) UpdateWorkflowStep(ctx context.Context, stepID uint, update WorkflowStepUpdate) (*models.WorkflowStep, error) {
	var step models.WorkflowStep
	path := fmt.Sprintf("/workflow-steps/%d", stepID)
	err := c.doForm(ctx, http.MethodPut, path, func(f *formWriter) error {
		f.optional("title", update.Title)
		f.optional("description", update.Description)
		if update.StepNumber != nil {
			f.field("step_number", strconv.Itoa(*update.StepNumber))
		}
		if update.Image != nil {
			f.file("image", update.Image)
		} else {
			f.optional("image_url", update.ImageURL)
		}
		return f.close()
	}, &step)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (c *Client) DeleteWorkflowStep(ctx context.Context, stepID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/workflow-steps/%d", stepID), nil, nil)
}
