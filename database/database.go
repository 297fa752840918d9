package database

import (
	"errors"

	"gorm.io/gorm"
)

// Guard errors surfaced by multi-statement repo operations. Handlers
// map these onto the API error taxonomy.
var (
	ErrSectionNotEmpty = errors.New("section still owns projects")
	ErrSectionMissing  = errors.New("section does not exist")
	ErrProjectMissing  = errors.New("project does not exist")
)

type Database struct {
	db *gorm.DB

	userRepo       *UserRepo
	sectionRepo    *SectionRepo
	projectRepo    *ProjectRepo
	advantageRepo  *AdvantageRepo
	featureRepo    *FeatureRepo
	statRepo       *StatRepo
	extraRepo      *ProjectExtraRepo
	teamMemberRepo *TeamMemberRepo
	workflowRepo   *WorkflowStepRepo
	configRepo     *ProjectConfigRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		userRepo:       NewUserRepo(db),
		sectionRepo:    NewSectionRepo(db),
		projectRepo:    NewProjectRepo(db),
		advantageRepo:  NewAdvantageRepo(db),
		featureRepo:    NewFeatureRepo(db),
		statRepo:       NewStatRepo(db),
		extraRepo:      NewProjectExtraRepo(db),
		teamMemberRepo: NewTeamMemberRepo(db),
		workflowRepo:   NewWorkflowStepRepo(db),
		configRepo:     NewProjectConfigRepo(db),
	}
}

// Transaction runs fn against a Database bound to a single transaction.
// Returning an error rolls everything back.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) SectionRepo() *SectionRepo {
	return d.sectionRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) AdvantageRepo() *AdvantageRepo {
	return d.advantageRepo
}

func (d Database) FeatureRepo() *FeatureRepo {
	return d.featureRepo
}

func (d Database) StatRepo() *StatRepo {
	return d.statRepo
}

func (d Database) ExtraRepo() *ProjectExtraRepo {
	return d.extraRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) WorkflowRepo() *WorkflowStepRepo {
	return d.workflowRepo
}

func (d Database) ConfigRepo() *ProjectConfigRepo {
	return d.configRepo
}
