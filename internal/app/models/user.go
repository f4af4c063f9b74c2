package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"alice@example.com"`            // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	Name      string    `json:"name" db:"name" example:"Alice"`                          // User's display name
	Bio       *string   `json:"bio,omitempty" db:"bio"`                                  // Short biography (nullable)
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`                     // URL of the user's avatar (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
