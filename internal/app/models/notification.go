package models

import "time"

// NotificationTypeDeadline marks notifications synthesized from course deadlines
const NotificationTypeDeadline = "deadline"

// Notification defines the notification model based on the 'notifications'
// table. Notifications are synthesized by the deadline deriver; there is no
// direct user-authored notification path.
type Notification struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	UserID    int64     `json:"userId" db:"user_id" example:"1"`
	Message   string    `json:"message" db:"message" example:"\"AWS SAA\" is due in 3 day(s)"`
	Type      string    `json:"type" db:"type" example:"deadline"`
	IsRead    bool      `json:"isRead" db:"is_read" example:"false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
