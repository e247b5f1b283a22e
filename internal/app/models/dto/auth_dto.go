package dto

// RegisterRequest is the payload for registering an admin account
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Email    string `json:"email" binding:"required,email" example:"admin@certivo.app"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued JWT
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int       `json:"expiresIn" example:"86400"`
	Admin     AdminInfo `json:"admin"`
}

// AdminInfo is the public shape of an admin account
type AdminInfo struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@certivo.app"`
}
