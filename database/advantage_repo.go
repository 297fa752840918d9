package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type AdvantageRepo struct {
	db *gorm.DB
}

func NewAdvantageRepo(db *gorm.DB) *AdvantageRepo {
	return &AdvantageRepo{db}
}

// FindByProject returns all advantages owned by a project.
func (r *AdvantageRepo) FindByProject(projectID uint) ([]*models.Advantage, error) {
	var advantages []*models.Advantage
	err := r.db.Where("project_id = ?", projectID).Find(&advantages).Error
	return advantages, err
}

// FindByID returns an advantage by its ID, or nil if absent.
func (r *AdvantageRepo) FindByID(id uint) (*models.Advantage, error) {
	var advantage models.Advantage
	err := r.db.First(&advantage, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &advantage, nil
}

// Add inserts a new advantage into the database
func (r *AdvantageRepo) Add(advantage *models.Advantage) error {
	return r.db.Create(advantage).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *AdvantageRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.Advantage{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes an advantage from the database by id
func (r *AdvantageRepo) Delete(id uint) error {
	return r.db.Delete(&models.Advantage{}, id).Error
}

// DeleteByProject removes all advantages owned by a project.
func (r *AdvantageRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Advantage{}).Error
}
