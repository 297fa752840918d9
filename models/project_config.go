package models

// ProjectConfig holds the per-project flags controlling which
// sub-sections the public page renders. One row per project; a project
// without a row renders everything (see DefaultProjectConfig).
type ProjectConfig struct {
	ProjectID      uint `json:"project_id" db:"project_id" gorm:"primaryKey"`
	ShowAdvantages bool `json:"showAdvantages" db:"show_advantages" gorm:"not null;default:true"`
	ShowFeatures   bool `json:"showFeatures" db:"show_features" gorm:"not null;default:true"`
	ShowWorkflow   bool `json:"showWorkflow" db:"show_workflow" gorm:"not null;default:true"`
	ShowTeam       bool `json:"showTeam" db:"show_team" gorm:"not null;default:true"`
	ShowContact    bool `json:"showContact" db:"show_contact" gorm:"not null;default:true"`
}

// DefaultProjectConfig is what a project renders before any config row
// has been saved for it.
func DefaultProjectConfig(projectID uint) ProjectConfig {
	return ProjectConfig{
		ProjectID:      projectID,
		ShowAdvantages: true,
		ShowFeatures:   true,
		ShowWorkflow:   true,
		ShowTeam:       true,
		ShowContact:    true,
	}
}
