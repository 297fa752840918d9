package models

// WorkflowStep is one step of a project's workflow block. Steps are
// displayed ordered by StepNumber; numbers are not required to be
// unique or contiguous, so readers sort defensively.
type WorkflowStep struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID   uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	StepNumber  int    `json:"step_number" db:"step_number" gorm:"not null"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" db:"image_url" gorm:"type:text"`
}
