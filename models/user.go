package models

// User roles. The seeded bootstrap account is the only admin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account that can authenticate against the API.
// Users are never created through the API; the admin account is seeded
// at process bootstrap if absent.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null"`
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
	Role     string `json:"role" db:"role" gorm:"type:text;not null;default:user"`
}
