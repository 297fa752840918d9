package models

// Advantage is one entry in a project's advantages block. Icon is an
// opaque string chosen by the client; it is stored and echoed verbatim.
type Advantage struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID   uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Icon        string `json:"icon" db:"icon" gorm:"type:text"`
	Stat        string `json:"stat" db:"stat" gorm:"type:text;not null"`
}
