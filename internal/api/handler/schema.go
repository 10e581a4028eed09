package handler

// loginRequest is the body of POST /login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
}

// limitResponse is returned once an anonymous session runs out of pageviews.
type limitResponse struct {
	Message string `json:"message" example:"Maximum pageview limit reached"`
}

// errorResponse is the generic error envelope.
type errorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}
