package models

// TeamMember is a person shown on a project's team block. Avatar holds
// a server-relative path to the stored image.
type TeamMember struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	Name      string `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string `json:"role" db:"role" gorm:"type:text;not null"`
	Bio       string `json:"bio" db:"bio" gorm:"type:text"`
	Avatar    string `json:"avatar" db:"avatar" gorm:"type:text"`
}
