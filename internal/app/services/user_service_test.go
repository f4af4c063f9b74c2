package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
)

func newTestUserService() (*UserService, *fakeUserRepo, *fakeCourseRepo, *fakeCertificateRepo) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	certificateRepo := newFakeCertificateRepo()
	service := NewUserService(userRepo, courseRepo, certificateRepo, &fakeFileStorage{})
	return service, userRepo, courseRepo, certificateRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo) int64 {
	t.Helper()
	user := &models.User{Email: "learner@example.com", Password: "hash", Name: "Learner"}
	_, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return user.ID
}

func seedCompletedCourses(t *testing.T, courseRepo *fakeCourseRepo, certificateRepo *fakeCertificateRepo, userID int64, completed, certificates int) {
	t.Helper()
	for i := 0; i < completed; i++ {
		course := models.Course{
			UserID:   userID,
			Title:    "Course",
			Platform: "Udemy",
			Category: "Programming",
			EndDate:  time.Now(),
			Status:   models.StatusCompleted,
		}
		_, err := courseRepo.Create(context.Background(), &course)
		require.NoError(t, err)
		certificateRepo.courseOwner[course.ID] = userID
		if i < certificates {
			_, err := certificateRepo.Create(context.Background(), &models.Certificate{CourseID: course.ID, FileURL: "/uploads/c.pdf"})
			require.NoError(t, err)
		}
	}
}

func TestGetProfileReturnsCountersAndAchievements(t *testing.T) {
	service, userRepo, courseRepo, certificateRepo := newTestUserService()
	userID := seedUser(t, userRepo)
	seedCompletedCourses(t, courseRepo, certificateRepo, userID, 5, 5)

	profile, err := service.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 5, profile.TotalCourses)
	assert.Equal(t, 5, profile.TotalCertificates)
	assert.Equal(t, []string{"First Course Completed", "5 Courses Milestone", "Certificate Collector"}, profile.Achievements)
}

func TestGetProfileWithNoActivityHasNoAchievements(t *testing.T) {
	service, userRepo, _, _ := newTestUserService()
	userID := seedUser(t, userRepo)

	profile, err := service.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Zero(t, profile.TotalCourses)
	assert.Zero(t, profile.TotalCertificates)
	assert.Empty(t, profile.Achievements)
	assert.NotNil(t, profile.Achievements)
}

func TestGetProfileUnknownUser(t *testing.T) {
	service, _, _, _ := newTestUserService()

	_, err := service.GetProfile(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestBuildAchievementsLadder(t *testing.T) {
	assert.Empty(t, buildAchievements(0, 0))
	assert.Equal(t, []string{"First Course Completed"}, buildAchievements(1, 0))
	assert.Equal(t,
		[]string{"First Course Completed", "5 Courses Milestone", "Dedicated Learner"},
		buildAchievements(10, 4))
	assert.Equal(t,
		[]string{"Certificate Collector"},
		buildAchievements(0, 5))
}

func TestUpdateProfilePreservesAbsentFields(t *testing.T) {
	service, userRepo, _, _ := newTestUserService()
	userID := seedUser(t, userRepo)

	bio := "Learning Go"
	_, err := service.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Bio: &bio}, nil)
	require.NoError(t, err)

	profile, err := service.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Learner", profile.Name)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "Learning Go", *profile.Bio)
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	service, userRepo, _, _ := newTestUserService()
	userID := seedUser(t, userRepo)

	empty := "   "
	_, err := service.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Name: &empty}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
