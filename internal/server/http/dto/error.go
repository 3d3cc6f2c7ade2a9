package dto

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

// MessageResponse is the root banner.
type MessageResponse struct {
	Message string `json:"message"`
}
