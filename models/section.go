package models

// Section is a named grouping of projects shown on the landing grid.
// A section cannot be deleted while it still owns projects.
type Section struct {
	ID       uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string    `json:"name" db:"name" gorm:"type:text;not null"`
	Projects []Project `json:"projects" gorm:"foreignKey:SectionID;references:ID"`
}
