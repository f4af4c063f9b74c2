package models

import (
	"strings"
	"time"
)

// CourseStatus is the lifecycle state of a tracked course
type CourseStatus string

// Course statuses
const (
	StatusNotStarted CourseStatus = "NOT_STARTED"
	StatusInProgress CourseStatus = "IN_PROGRESS"
	StatusCompleted  CourseStatus = "COMPLETED"
)

// ParseCourseStatus normalizes a wire representation of a status. Clients send
// dash-case, snake_case or mixed case; storage is upper snake_case.
func ParseCourseStatus(value string) (CourseStatus, bool) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))
	switch CourseStatus(normalized) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return CourseStatus(normalized), true
	}
	return "", false
}

// Course defines the course model based on the 'courses' table. A course is
// owned exclusively by one user; every query and mutation is filtered by the
// owner's id.
type Course struct {
	ID           int64         `json:"id" db:"id" example:"1"`
	UserID       int64         `json:"userId" db:"user_id" example:"1"`
	Title        string        `json:"title" db:"title" example:"AWS SAA"`
	Platform     string        `json:"platform" db:"platform" example:"AWS Academy"`
	Category     string        `json:"category" db:"category" example:"Cloud Computing"`
	StartDate    time.Time     `json:"startDate" db:"start_date" example:"2025-01-01T00:00:00Z"`
	EndDate      time.Time     `json:"endDate" db:"end_date" example:"2025-02-01T00:00:00Z"`
	Status       CourseStatus  `json:"status" db:"status" example:"NOT_STARTED"`
	Progress     int           `json:"progress" db:"progress" example:"0"`    // 0-100
	HoursLearned float64       `json:"hoursLearned" db:"hours_learned" example:"12.5"` // Non-negative
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
	Certificates []Certificate `json:"certificates"` // Relation, no db tag
}
