package models

// Stat is a numeric/textual highlight row for a project.
type Stat struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID   uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	IconKey     string `json:"icon_key" db:"icon_key" gorm:"type:text"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Text        string `json:"text" db:"text" gorm:"type:text"`
}
