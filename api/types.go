package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	profileHandler     profileHandler
	publicationHandler publicationHandler
	projectHandler     projectHandler
	newsHandler        newsHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Message string `json:"message" example:"Profile not found"`
	Field   string `json:"field,omitempty" example:"title"`
}
