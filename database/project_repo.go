package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects with their owning section preloaded.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Section").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if absent.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Section").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindLast returns the most recently created project, or nil if none.
func (r *ProjectRepo) FindLast() (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Section").Order("id DESC").First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project row with the given ID exists.
func (r *ProjectRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountBySection returns how many projects reference the given section.
func (r *ProjectRepo) CountBySection(sectionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *ProjectRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(changes).Error
}

// PatchHeading updates the advantages-block heading columns on the
// project row. changes uses the advantages_title/advantages_subtitle
// column names.
func (r *ProjectRepo) PatchHeading(id uint, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}
