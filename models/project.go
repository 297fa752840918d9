package models

// Project is a showcased work item owned by exactly one section.
// Image holds a server-relative path; the public origin is prepended
// when the row is shaped for a response, never stored.
//
// AdvantagesTitle/AdvantagesSubtitle are the heading of the project's
// advantages block. They live here (one row) rather than being repeated
// on every advantage row.
type Project struct {
	ID                 uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title              string `json:"title" db:"title" gorm:"type:text;not null"`
	Description        string `json:"description" db:"description" gorm:"type:text;not null"`
	Image              string `json:"image" db:"image" gorm:"type:text"`
	Category           string `json:"category" db:"category" gorm:"type:text;not null"`
	SectionID          uint   `json:"section_id" db:"section_id" gorm:"not null;index"`
	AdvantagesTitle    string `json:"advantages_title" db:"advantages_title" gorm:"type:text"`
	AdvantagesSubtitle string `json:"advantages_subtitle" db:"advantages_subtitle" gorm:"type:text"`

	Section *Section `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
