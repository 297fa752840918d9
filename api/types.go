package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	healthHandler     healthHandler
	sectionHandler    sectionHandler
	projectHandler    projectHandler
	advantageHandler  advantageHandler
	featureHandler    featureHandler
	statHandler       statHandler
	extraHandler      extraHandler
	teamMemberHandler teamMemberHandler
	workflowHandler   workflowHandler
	configHandler     configHandler
	uploadHandler     uploadHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
