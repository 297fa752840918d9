package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/atelierweb/showcase-backend/models"
)

// ProjectUpload is the multipart payload for creating a project. Image
// takes precedence over ImagePath when both are set; ImagePath carries
// a path from a prior UploadProjectFile call.
type ProjectUpload struct {
	Title       string
	Category    string
	SectionID   uint
	Description string
	Image       *FileUpload
	ImagePath   string
}

// ProjectUpdate carries the fields to change; nil means leave alone.
type ProjectUpdate struct {
	Title       *string
	Category    *string
	SectionID   *uint
	Description *string
	Image       *FileUpload
	ImagePath   *string
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, projectID uint) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) LastProject(ctx context.Context) (*models.Project, error) {
	var project models.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/last", nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, upload ProjectUpload) (*models.Project, error) {
	var project models.Project
	err := c.doForm(ctx, http.MethodPost, "/projects", func(f *formWriter) error {
		f.field("title", upload.Title)
		f.field("category", upload.Category)
		f.field("section_id", strconv.FormatUint(uint64(upload.SectionID), 10))
		if upload.Description != "" {
			f.field("description", upload.Description)
		}
		if upload.Image != nil {
			f.file("image", upload.Image)
		} else if upload.ImagePath != "" {
			f.field("image", upload.ImagePath)
		}
		return f.close()
	}, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID uint, update ProjectUpdate) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d", projectID)
	err := c.doForm(ctx, http.MethodPut, path, func(f *formWriter) error {
		f.optional("title", update.Title)
		f.optional("category", update.Category)
		f.optional("description", update.Description)
		if update.SectionID != nil {
			f.field("section_id", strconv.FormatUint(uint64(*update.SectionID), 10))
		}
		if update.Image != nil {
			f.file("image", update.Image)
		} else {
			f.optional("image", update.ImagePath)
		}
		return f.close()
	}, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil, nil)
}

func (c *Client) uploadFile(ctx context.Context, path string, upload FileUpload) (string, error) {
	var result struct {
		FileURL string `json:"fileUrl"`
	}
	err := c.doForm(ctx, http.MethodPost, path, func(f *formWriter) error {
		f.file("file", &upload)
		return f.close()
	}, &result)
	if err != nil {
		return "", err
	}
	return result.FileURL, nil
}

// UploadProjectFile stores a standalone file and returns its relative
// path for use as a project image.
func (c *Client) UploadProjectFile(ctx context.Context, upload FileUpload) (string, error) {
	return c.uploadFile(ctx, "/projects/upload", upload)
}

// UploadFeatureFile stores a standalone file and returns its relative
// path for use as feature media.
func (c *Client) UploadFeatureFile(ctx context.Context, upload FileUpload) (string, error) {
	return c.uploadFile(ctx, "/features/upload", upload)
}
