package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type FeatureRepo struct {
	db *gorm.DB
}

func NewFeatureRepo(db *gorm.DB) *FeatureRepo {
	return &FeatureRepo{db}
}

// FindByProject returns all features owned by a project.
func (r *FeatureRepo) FindByProject(projectID uint) ([]*models.Feature, error) {
	var features []*models.Feature
	err := r.db.Where("project_id = ?", projectID).Find(&features).Error
	return features, err
}

// FindByID returns a feature by its ID, or nil if absent.
func (r *FeatureRepo) FindByID(id uint) (*models.Feature, error) {
	var feature models.Feature
	err := r.db.First(&feature, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feature, nil
}

// Add inserts a new feature into the database
func (r *FeatureRepo) Add(feature *models.Feature) error {
	return r.db.Create(feature).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *FeatureRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.Feature{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a feature from the database by id
func (r *FeatureRepo) Delete(id uint) error {
	return r.db.Delete(&models.Feature{}, id).Error
}

// DeleteByProject removes all features owned by a project.
func (r *FeatureRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Feature{}).Error
}
