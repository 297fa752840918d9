package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectConfigRepo struct {
	db *gorm.DB
}

func NewProjectConfigRepo(db *gorm.DB) *ProjectConfigRepo {
	return &ProjectConfigRepo{db}
}

// Find returns a project's config row, or nil if none has been saved.
func (r *ProjectConfigRepo) Find(projectID uint) (*models.ProjectConfig, error) {
	var cfg models.ProjectConfig
	err := r.db.Where("project_id = ?", projectID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes the config row, inserting or replacing in one
// statement so concurrent saves cannot interleave.
func (r *ProjectConfigRepo) Upsert(cfg *models.ProjectConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		UpdateAll: true,
	}).Create(cfg).Error
}

// DeleteByProject removes a project's config row if present.
func (r *ProjectConfigRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectConfig{}).Error
}
