package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atelierweb/showcase-backend/models"
)

// TeamMemberUpload is the multipart payload for adding a team member.
// Avatar takes precedence over AvatarValue; AvatarValue may be a
// stored path or a base64 data URI.
type TeamMemberUpload struct {
	Name        string
	Role        string
	Bio         string
	Avatar      *FileUpload
	AvatarValue string
}

type TeamMemberUpdate struct {
	Name        *string
	Role        *string
	Bio         *string
	Avatar      *FileUpload
	AvatarValue *string
}

func (c *Client) ListTeamMembers(ctx context.Context, projectID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	path := fmt.Sprintf("/projects/%d/team-members", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) CreateTeamMember(ctx context.Context, projectID uint, upload TeamMemberUpload) (*models.TeamMember, error) {
	var member models.TeamMember
	path := fmt.Sprintf("/projects/%d/team-members", projectID)
	err := c.doForm(ctx, http.MethodPost, path, func(f *formWriter) error {
		f.field("name", upload.Name)
		f.field("role", upload.Role)
		if upload.Bio != "" {
			f.field("bio", upload.Bio)
		}
		if upload.Avatar != nil {
			f.file("avatar", upload.Avatar)
		} else if upload.AvatarValue != "" {
			f.field("avatar", upload.AvatarValue)
		}
		return f.close()
	}, &member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, memberID uint, update TeamMemberUpdate) (*models.TeamMember, error) {
	var member models.TeamMember
	path := fmt.Sprintf("/team-members/%d", memberID)
	err := c.doForm(ctx, http.MethodPut, path, func(f *formWriter) error {
		f.optional("name", update.Name)
		f.optional("role", update.Role)
		f.optional("bio", update.Bio)
		if update.Avatar != nil {
			f.file("avatar", update.Avatar)
		} else {
			f.optional("avatar", update.AvatarValue)
		}
		return f.close()
	}, &member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, memberID uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/team-members/%d", memberID), nil, nil)
}
