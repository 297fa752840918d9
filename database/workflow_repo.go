package database

import (
	"errors"

	"github.com/atelierweb/showcase-backend/models"
	"gorm.io/gorm"
)

type WorkflowStepRepo struct {
	db *gorm.DB
}

func NewWorkflowStepRepo(db *gorm.DB) *WorkflowStepRepo {
	return &WorkflowStepRepo{db}
}

// FindByProject returns a project's workflow steps ordered by
// step_number for display. Numbers may repeat, so the order within a
// duplicate number is unspecified.
func (r *WorkflowStepRepo) FindByProject(projectID uint) ([]*models.WorkflowStep, error) {
	var steps []*models.WorkflowStep
	err := r.db.Where("project_id = ?", projectID).Order("step_number").Find(&steps).Error
	return steps, err
}

// FindByID returns a workflow step by its ID, or nil if absent.
func (r *WorkflowStepRepo) FindByID(id uint) (*models.WorkflowStep, error) {
	var step models.WorkflowStep
	err := r.db.First(&step, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// Add inserts a new workflow step into the database
func (r *WorkflowStepRepo) Add(step *models.WorkflowStep) error {
	return r.db.Create(step).Error
}

// Patch applies a partial update built from explicitly-present fields.
func (r *WorkflowStepRepo) Patch(id uint, changes map[string]any) error {
	return r.db.Model(&models.WorkflowStep{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a workflow step from the database by id
func (r *WorkflowStepRepo) Delete(id uint) error {
	return r.db.Delete(&models.WorkflowStep{}, id).Error
}

// DeleteByProject removes all workflow steps owned by a project.
func (r *WorkflowStepRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.WorkflowStep{}).Error
}
