package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type TeamMemberRepo struct {
	db *gorm.DB
}

func NewTeamMemberRepo(db *gorm.DB) *TeamMemberRepo {
	return &TeamMemberRepo{db}
}

// FindByProject returns all team members owned by a project.
func (r *TeamMemberRepo) FindByProject(projectID uint) ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	err := r.db.Where("project_id = ?", projectID).Find(&members).Error
	return members, err
}

// FindByID returns a team member by its ID, or nil if absent.
func (r *TeamMemberRepo) FindByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Add inserts a new team member into the database
func (r *TeamMemberRepo) Add(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *TeamMemberRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a team member from the database by id
func (r *TeamMemberRepo) Delete(id uint) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}

// DeleteByProject removes all team members owned by a project.
func (r *TeamMemberRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.TeamMember{}).Error
}
