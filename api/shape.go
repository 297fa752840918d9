package api

import (
	"github.com/atelierweb/showcase-backend/media"
	"github.com/atelierweb/showcase-backend/models"
)

// Response shaping. Rows store server-relative media paths; every read
// path goes through one of these so the public origin is prepended
// consistently across endpoints.

func shapeProject(store *media.Store, p *models.Project) *models.Project {
	shaped := *p
	shaped.Image = store.URL(p.Image)
	if shaped.Section != nil {
		section := *shaped.Section
		section.Projects = nil
		shaped.Section = &section
	}
	return &shaped
}

func shapeProjects(store *media.Store, projects []*models.Project) []*models.Project {
	shaped := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		shaped = append(shaped, shapeProject(store, p))
	}
	return shaped
}

func shapeSection(store *media.Store, s *models.Section) *models.Section {
	shaped := *s
	shaped.Projects = make([]models.Project, 0, len(s.Projects))
	for i := range s.Projects {
		shaped.Projects = append(shaped.Projects, *shapeProject(store, &s.Projects[i]))
	}
	return &shaped
}

func shapeSections(store *media.Store, sections []*models.Section) []*models.Section {
	shaped := make([]*models.Section, 0, len(sections))
	for _, s := range sections {
		shaped = append(shaped, shapeSection(store, s))
	}
	return shaped
}

func shapeFeature(store *media.Store, f *models.Feature) *models.Feature {
	shaped := *f
	shaped.MediaURL = store.URL(f.MediaURL)
	return &shaped
}

func shapeFeatures(store *media.Store, features []*models.Feature) []*models.Feature {
	shaped := make([]*models.Feature, 0, len(features))
	for _, f := range features {
		shaped = append(shaped, shapeFeature(store, f))
	}
	return shaped
}

func shapeTeamMember(store *media.Store, m *models.TeamMember) *models.TeamMember {
	shaped := *m
	shaped.Avatar = store.URL(m.Avatar)
	return &shaped
}

func shapeTeamMembers(store *media.Store, members []*models.TeamMember) []*models.TeamMember {
	shaped := make([]*models.TeamMember, 0, len(members))
	for _, m := range members {
		shaped = append(shaped, shapeTeamMember(store, m))
	}
	return shaped
}

func shapeWorkflowStep(store *media.Store, s *models.WorkflowStep) *models.WorkflowStep {
	shaped := *s
	shaped.ImageURL = store.URL(s.ImageURL)
	return &shaped
}

func shapeWorkflowSteps(store *media.Store, steps []*models.WorkflowStep) []*models.WorkflowStep {
	shaped := make([]*models.WorkflowStep, 0, len(steps))
	for _, s := range steps {
		shaped = append(shaped, shapeWorkflowStep(store, s))
	}
	return shaped
}
