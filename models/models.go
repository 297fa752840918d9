package models

// All returns every model in migration order (parents before children).
func All() []any {
	return []any{
		&User{},
		&Section{},
		&Project{},
		&Advantage{},
		&Feature{},
		&Stat{},
		&ProjectExtra{},
		&TeamMember{},
		&WorkflowStep{},
		&ProjectConfig{},
	}
}
