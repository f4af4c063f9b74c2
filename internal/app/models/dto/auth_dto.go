package dto

import "time"

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
	Name     string `json:"name" example:"Alice"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
}

// PublicUser is the user projection returned by the API. It never carries the
// password hash.
type PublicUser struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name" example:"Alice"`
	Bio       *string   `json:"bio,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" example:"2025-01-01T10:00:00Z"`
}

// AuthResponse carries a freshly issued token and the public user projection
type AuthResponse struct {
	Message string     `json:"message" example:"Login successful"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}
