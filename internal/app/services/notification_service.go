package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
)

// deadlineWindow is how far ahead of a course end date a reminder is raised
const deadlineWindow = 7 * 24 * time.Hour

// NotificationService derives deadline reminders from course end dates and
// serves the notification list.
type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	courseRepo       repositories.ICourseRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.INotificationRepository, courseRepo repositories.ICourseRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		courseRepo:       courseRepo,
	}
}

// ListNotifications refreshes deadline reminders for the user's not-yet-
// completed courses and returns all notifications, newest first. A course
// whose end date falls within the next seven days gets one reminder; an
// unread reminder naming the same course suppresses duplicates across calls.
func (s *NotificationService) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	now := time.Now()

	if err := s.deriveDeadlineReminders(ctx, userID, now); err != nil {
		return nil, err
	}

	return s.notificationRepo.ListOwned(ctx, userID)
}

func (s *NotificationService) deriveDeadlineReminders(ctx context.Context, userID int64, now time.Time) error {
	dueCourses, err := s.courseRepo.ListOwnedDueBetween(ctx, userID, now, now.Add(deadlineWindow))
	if err != nil {
		return err
	}

	for _, course := range dueCourses {
		exists, err := s.notificationRepo.UnreadMessageExists(ctx, userID, course.Title)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		notification := &models.Notification{
			UserID:  userID,
			Message: deadlineMessage(course.Title, course.EndDate, now),
			Type:    models.NotificationTypeDeadline,
			IsRead:  false,
		}
		if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
			return err
		}
		logger.Info().Int64("userID", userID).Int64("courseID", course.ID).Msg("Deadline reminder created")
	}

	return nil
}

// deadlineMessage renders the reminder text with the remaining days rounded
// up, so a deadline 6.5 days out reads as 7 days.
func deadlineMessage(title string, endDate, now time.Time) string {
	days := int(math.Ceil(endDate.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return fmt.Sprintf("%q is due in %d day(s)", title, days)
}

// MarkRead marks one of the user's notifications as read. Marking a missing
// or foreign notification is a no-op rather than an error.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}
