package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/skillsphere/internal/app/models"
)

func newTestNotificationService() (*NotificationService, *fakeCourseRepo, *fakeNotificationRepo) {
	courseRepo := newFakeCourseRepo()
	notificationRepo := newFakeNotificationRepo()
	return NewNotificationService(notificationRepo, courseRepo), courseRepo, notificationRepo
}

func addCourse(t *testing.T, repo *fakeCourseRepo, userID int64, title string, status models.CourseStatus, endDate time.Time) models.Course {
	t.Helper()
	course := models.Course{
		UserID:   userID,
		Title:    title,
		Platform: "Udemy",
		Category: "Programming",
		EndDate:  endDate,
		Status:   status,
	}
	_, err := repo.Create(context.Background(), &course)
	require.NoError(t, err)
	return course
}

func TestListNotificationsCreatesDeadlineReminder(t *testing.T) {
	service, courseRepo, _ := newTestNotificationService()
	addCourse(t, courseRepo, 1, "Go Basics", models.StatusInProgress, time.Now().Add(3*24*time.Hour))

	notifications, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Go Basics")
	assert.Contains(t, notifications[0].Message, "is due in 3 day(s)")
	assert.Equal(t, models.NotificationTypeDeadline, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestListNotificationsDoesNotDuplicateUnreadReminders(t *testing.T) {
	service, courseRepo, _ := newTestNotificationService()
	addCourse(t, courseRepo, 1, "Go Basics", models.StatusInProgress, time.Now().Add(2*24*time.Hour))

	first, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestListNotificationsRemindsAgainAfterMarkRead(t *testing.T) {
	service, courseRepo, _ := newTestNotificationService()
	addCourse(t, courseRepo, 1, "Go Basics", models.StatusInProgress, time.Now().Add(2*24*time.Hour))

	first, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, service.MarkRead(context.Background(), 1, first[0].ID))

	// With the unread reminder gone, the still-pending deadline is raised again
	second, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestListNotificationsIgnoresCoursesOutsideWindow(t *testing.T) {
	service, courseRepo, _ := newTestNotificationService()
	addCourse(t, courseRepo, 1, "Completed Soon", models.StatusCompleted, time.Now().Add(2*24*time.Hour))
	addCourse(t, courseRepo, 1, "Far Away", models.StatusInProgress, time.Now().Add(30*24*time.Hour))
	addCourse(t, courseRepo, 1, "Already Over", models.StatusInProgress, time.Now().Add(-24*time.Hour))
	addCourse(t, courseRepo, 2, "Someone Elses", models.StatusInProgress, time.Now().Add(2*24*time.Hour))

	notifications, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMarkReadIgnoresForeignNotifications(t *testing.T) {
	service, courseRepo, notificationRepo := newTestNotificationService()
	addCourse(t, courseRepo, 1, "Go Basics", models.StatusInProgress, time.Now().Add(2*24*time.Hour))

	notifications, err := service.ListNotifications(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	// Another user marking the same id succeeds but changes nothing
	require.NoError(t, service.MarkRead(context.Background(), 2, notifications[0].ID))

	owned, err := notificationRepo.ListOwned(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.False(t, owned[0].IsRead)
}

func TestDeadlineMessageRoundsDaysUp(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	halfDay := deadlineMessage("Go Basics", now.Add(12*time.Hour), now)
	assert.Equal(t, `"Go Basics" is due in 1 day(s)`, halfDay)

	sixAndAHalf := deadlineMessage("Go Basics", now.Add(156*time.Hour), now)
	assert.Equal(t, `"Go Basics" is due in 7 day(s)`, sixAndAHalf)

	exact := deadlineMessage("Go Basics", now.Add(72*time.Hour), now)
	assert.Equal(t, `"Go Basics" is due in 3 day(s)`, exact)
}
