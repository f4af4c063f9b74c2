package dto

// CreateCourseRequest carries the multipart form fields for course creation.
// Numeric fields arrive as form strings and are parsed by the controller.
type CreateCourseRequest struct {
	Title        string   `json:"title" form:"title" example:"AWS SAA"`
	Platform     string   `json:"platform" form:"platform" example:"AWS Academy"`
	Category     string   `json:"category" form:"category" example:"Cloud Computing"`
	StartDate    string   `json:"startDate" form:"startDate" example:"2025-01-01"`
	EndDate      string   `json:"endDate" form:"endDate" example:"2025-02-01"`
	Status       string   `json:"status,omitempty" form:"status" example:"not-started"`
	Progress     *int     `json:"progress,omitempty" form:"progress" example:"0"`
	HoursLearned *float64 `json:"hoursLearned,omitempty" form:"hoursLearned" example:"0"`
}

// UpdateCourseRequest carries the partial multipart form fields for a course
// update. Absent fields are left untouched, not reset.
type UpdateCourseRequest struct {
	Title        *string  `json:"title,omitempty" form:"title"`
	Platform     *string  `json:"platform,omitempty" form:"platform"`
	Category     *string  `json:"category,omitempty" form:"category"`
	StartDate    *string  `json:"startDate,omitempty" form:"startDate"`
	EndDate      *string  `json:"endDate,omitempty" form:"endDate"`
	Status       *string  `json:"status,omitempty" form:"status"`
	Progress     *int     `json:"progress,omitempty" form:"progress"`
	HoursLearned *float64 `json:"hoursLearned,omitempty" form:"hoursLearned"`
}
