package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type SectionRepo struct {
	db *gorm.DB
}

func NewSectionRepo(db *gorm.DB) *SectionRepo {
	return &SectionRepo{db}
}

// FindAll returns all sections with their projects preloaded.
func (r *SectionRepo) FindAll() ([]*models.Section, error) {
	var sections []*models.Section
	err := r.db.Preload("Projects").Find(&sections).Error
	return sections, err
}

// FindByID returns a section by its ID, or nil if absent.
func (r *SectionRepo) FindByID(id uint) (*models.Section, error) {
	var section models.Section
	err := r.db.Preload("Projects").First(&section, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// Exists reports whether a section row with the given ID exists.
func (r *SectionRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Section{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Add inserts a new section into the database
func (r *SectionRepo) Add(section *models.Section) error {
	return r.db.Create(section).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *SectionRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.Section{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a section row. The projects-still-attached guard runs
// in the handler's transaction, not here.
func (r *SectionRepo) Delete(id uint) error {
	return r.db.Delete(&models.Section{}, id).Error
}
