package models

// Feature media kinds.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Feature is a media-backed highlight of a project.
type Feature struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
	Title     string `json:"title" db:"title" gorm:"type:text;not null"`
	Subtitle  string `json:"subtitle" db:"subtitle" gorm:"type:text"`
	IconKey   string `json:"icon_key" db:"icon_key" gorm:"type:text"`
	MediaType string `json:"media_type" db:"media_type" gorm:"type:text;not null"`
	MediaURL  string `json:"media_url" db:"media_url" gorm:"type:text"`
}
