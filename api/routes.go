package api

import (
	"net/http"

	"github.com/atelierweb/showcase-backend/media"
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Reads are public; every mutating
// route sits behind the auth gate, team members included.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, store *media.Store) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/login", handlers.authHandler.login())
		r.Get("/health", handlers.healthHandler.health())

		r.Get("/sections", handlers.sectionHandler.getAllSections())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/last", handlers.projectHandler.getLastProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/projects/{projectID}/advantages", handlers.advantageHandler.getAdvantages())
		r.Get("/projects/{projectID}/features", handlers.featureHandler.getFeatures())
		r.Get("/projects/{projectID}/stats", handlers.statHandler.getStats())
		r.Get("/projects/{projectID}/extras", handlers.extraHandler.getExtras())
		r.Get("/projects/{projectID}/team-members", handlers.teamMemberHandler.getTeamMembers())
		r.Get("/projects/{projectID}/workflow", handlers.workflowHandler.getWorkflowSteps())
		r.Get("/projects/{projectID}/config", handlers.configHandler.getConfig())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/verify", handlers.authHandler.verify())

		r.Post("/sections", handlers.sectionHandler.createSection())
		r.Put("/sections/{sectionID}", handlers.sectionHandler.updateSection())
		r.Delete("/sections/{sectionID}", handlers.sectionHandler.deleteSection())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/projects/upload", handlers.uploadHandler.upload())

		r.Post("/projects/{projectID}/advantages", handlers.advantageHandler.createAdvantage())
		r.Put("/advantages/{advantageID}", handlers.advantageHandler.updateAdvantage())
		r.Delete("/advantages/{advantageID}", handlers.advantageHandler.deleteAdvantage())

		r.Post("/projects/{projectID}/features", handlers.featureHandler.createFeature())
		r.Put("/features/{featureID}", handlers.featureHandler.updateFeature())
		r.Delete("/features/{featureID}", handlers.featureHandler.deleteFeature())
		r.Post("/features/upload", handlers.uploadHandler.upload())

		r.Post("/projects/{projectID}/stats", handlers.statHandler.createStat())
		r.Put("/stats/{statID}", handlers.statHandler.updateStat())
		r.Delete("/stats/{statID}", handlers.statHandler.deleteStat())

		r.Post("/projects/{projectID}/extras", handlers.extraHandler.createExtra())
		r.Put("/extras/{extraID}", handlers.extraHandler.updateExtra())
		r.Delete("/extras/{extraID}", handlers.extraHandler.deleteExtra())

		r.Post("/projects/{projectID}/team-members", handlers.teamMemberHandler.createTeamMember())
		r.Put("/team-members/{memberID}", handlers.teamMemberHandler.updateTeamMember())
		r.Delete("/team-members/{memberID}", handlers.teamMemberHandler.deleteTeamMember())

		r.Post("/projects/{projectID}/workflow", handlers.workflowHandler.createWorkflowStep())
		r.Put("/workflow-steps/{stepID}", handlers.workflowHandler.updateWorkflowStep())
		r.Delete("/workflow-steps/{stepID}", handlers.workflowHandler.deleteWorkflowStep())

		r.Put("/projects/{projectID}/config", handlers.configHandler.updateConfig())
	})

	// Read-only static serving of the media directory
	fileServer := http.StripPrefix(media.MountPath, http.FileServer(http.Dir(store.Root())))
	r.Get(media.MountPath+"/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})
}
