package api

import (
	"time"

	"github.com/atelierweb/showcase-backend/auth"
	"github.com/atelierweb/showcase-backend/database"
	"github.com/atelierweb/showcase-backend/media"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, store *media.Store, tokens *auth.TokenService, startupTime time.Time, maxUploadBytes int64) *routeHandlers {
	return &routeHandlers{
		authHandler:       newAuthHandler(db, tokens),
		healthHandler:     newHealthHandler(startupTime),
		sectionHandler:    newSectionHandler(db, store),
		projectHandler:    newProjectHandler(db, store, maxUploadBytes),
		advantageHandler:  newAdvantageHandler(db),
		featureHandler:    newFeatureHandler(db, store, maxUploadBytes),
		statHandler:       newStatHandler(db),
		extraHandler:      newExtraHandler(db),
		teamMemberHandler: newTeamMemberHandler(db, store, maxUploadBytes),
		workflowHandler:   newWorkflowHandler(db, store, maxUploadBytes),
		configHandler:     newConfigHandler(db),
		uploadHandler:     newUploadHandler(store, maxUploadBytes),
	}
}
