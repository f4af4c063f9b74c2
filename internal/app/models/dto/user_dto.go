package dto

import "time"

// UpdateProfileRequest carries the partial multipart form fields for a profile
// update. The avatar file, if any, is read separately from the form.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" form:"name"`
	Bio  *string `json:"bio,omitempty" form:"bio"`
}

// ProfileResponse is the profile projection with derived learning statistics
type ProfileResponse struct {
	ID                int64     `json:"id" example:"1"`
	Email             string    `json:"email" example:"alice@example.com"`
	Name              string    `json:"name" example:"Alice"`
	Bio               *string   `json:"bio,omitempty"`
	AvatarURL         *string   `json:"avatarUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	TotalCourses      int       `json:"totalCourses" example:"4"`
	TotalCertificates int       `json:"totalCertificates" example:"3"`
	Achievements      []string  `json:"achievements" example:"First Course Completed"`
}
