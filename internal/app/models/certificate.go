package models

import "time"

// Certificate defines the certificate model based on the 'certificates' table.
// A certificate is owned exclusively by one course; multiple certificates may
// attach to the same course and are deleted only via cascade with it.
type Certificate struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	CourseID  int64     `json:"courseId" db:"course_id" example:"1"`
	FileURL   string    `json:"fileUrl" db:"file_url" example:"/uploads/2f9c7b9e.pdf"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
