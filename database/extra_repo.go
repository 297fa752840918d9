package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type ProjectExtraRepo struct {
	db *gorm.DB
}

func NewProjectExtraRepo(db *gorm.DB) *ProjectExtraRepo {
	return &ProjectExtraRepo{db}
}

// FindByProject returns all extras owned by a project.
func (r *ProjectExtraRepo) FindByProject(projectID uint) ([]*models.ProjectExtra, error) {
	var extras []*models.ProjectExtra
	err := r.db.Where("project_id = ?", projectID).Find(&extras).Error
	return extras, err
}

// FindByID returns an extra by its ID, or nil if absent.
func (r *ProjectExtraRepo) FindByID(id uint) (*models.ProjectExtra, error) {
	var extra models.ProjectExtra
	err := r.db.First(&extra, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &extra, nil
}

// Add inserts a new extra into the database
func (r *ProjectExtraRepo) Add(extra *models.ProjectExtra) error {
	return r.db.Create(extra).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *ProjectExtraRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.ProjectExtra{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes an extra from the database by id
func (r *ProjectExtraRepo) Delete(id uint) error {
	return r.db.Delete(&models.ProjectExtra{}, id).Error
}

// DeleteByProject removes all extras owned by a project.
func (r *ProjectExtraRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectExtra{}).Error
}
