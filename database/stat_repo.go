package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type StatRepo struct {
	db *gorm.DB
}

func NewStatRepo(db *gorm.DB) *StatRepo {
	return &StatRepo{db}
}

// FindByProject returns all stats owned by a project.
func (r *StatRepo) FindByProject(projectID uint) ([]*models.Stat, error) {
	var stats []*models.Stat
	err := r.db.Where("project_id = ?", projectID).Find(&stats).Error
	return stats, err
}

// FindByID returns a stat by its ID, or nil if absent.
func (r *StatRepo) FindByID(id uint) (*models.Stat, error) {
	var stat models.Stat
	err := r.db.First(&stat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// Add inserts a new stat into the database
func (r *StatRepo) Add(stat *models.Stat) error {
	return r.db.Create(stat).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *StatRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.Stat{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a stat from the database by id
func (r *StatRepo) Delete(id uint) error {
	return r.db.Delete(&models.Stat{}, id).Error
}

// DeleteByProject removes all stats owned by a project.
func (r *StatRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Stat{}).Error
}
