package dto

// LoginRequest represents operator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse confirms an operator session
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// HealthResponse reports database reachability and pool usage
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Pool     any    `json:"pool"`
}
