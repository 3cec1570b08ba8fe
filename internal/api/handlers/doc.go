// Package handlers implements HTTP handlers for the listing-aggregator API.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error"  example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessResponse reports the state of each dependency.
type ReadinessResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}
