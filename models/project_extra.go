package models

// ProjectExtra is a supplemental text row for a project. FeatureID is
// optional; the display layer may group extras under a feature.
type ProjectExtra struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID   uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	FeatureID   *uint  `json:"feature_id,omitempty" db:"feature_id" gorm:"index"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Stat        string `json:"stat" db:"stat" gorm:"type:text"`
}
