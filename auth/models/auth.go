package models

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
