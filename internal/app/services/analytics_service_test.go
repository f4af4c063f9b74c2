package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/skillsphere/internal/app/models"
)

func TestBuildMonthlyStatsAlwaysReturnsSixBucketsOldestFirst(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	stats := buildMonthlyStats(nil, now)

	require.Len(t, stats, 6)
	assert.Equal(t, "Jan 2026", stats[0].Month)
	assert.Equal(t, "Jun 2026", stats[5].Month)
	for _, stat := range stats {
		assert.Zero(t, stat.Hours)
		assert.Zero(t, stat.CoursesCompleted)
	}
}

func TestBuildMonthlyStatsBucketsByEndDate(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	courses := []models.Course{
		{
			EndDate:      time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
			Status:       models.StatusCompleted,
			HoursLearned: 10,
		},
		{
			EndDate:      time.Date(2026, time.April, 28, 0, 0, 0, 0, time.UTC),
			Status:       models.StatusInProgress,
			HoursLearned: 5,
		},
		{
			// Outside the six-month window
			EndDate:      time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			Status:       models.StatusCompleted,
			HoursLearned: 99,
		},
	}

	stats := buildMonthlyStats(courses, now)

	require.Len(t, stats, 6)
	april := stats[3]
	assert.Equal(t, "Apr 2026", april.Month)
	assert.Equal(t, 15.0, april.Hours)
	assert.Equal(t, 1, april.CoursesCompleted)

	total := 0.0
	for _, stat := range stats {
		total += stat.Hours
	}
	assert.Equal(t, 15.0, total)
}

func TestBuildMonthlyStatsSpansYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	stats := buildMonthlyStats(nil, now)

	require.Len(t, stats, 6)
	assert.Equal(t, "Sep 2025", stats[0].Month)
	assert.Equal(t, "Feb 2026", stats[5].Month)
}

func TestBuildCategoryDistributionRoundsPercentages(t *testing.T) {
	courses := []models.Course{
		{Category: "Cloud Computing"},
		{Category: "Programming"},
		{Category: "Cloud Computing"},
	}

	distribution := buildCategoryDistribution(courses)

	require.Len(t, distribution, 2)
	assert.Equal(t, "Cloud Computing", distribution[0].Category)
	assert.Equal(t, 2, distribution[0].Count)
	assert.Equal(t, 67, distribution[0].Percentage)
	assert.Equal(t, "Programming", distribution[1].Category)
	assert.Equal(t, 33, distribution[1].Percentage)
}

func TestBuildCategoryDistributionEmptyCollection(t *testing.T) {
	distribution := buildCategoryDistribution(nil)
	assert.Empty(t, distribution)
}

func TestGetDashboardStatsCountsByStatus(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	certificateRepo := newFakeCertificateRepo()
	service := NewAnalyticsService(courseRepo, certificateRepo)

	courses := []models.Course{
		{UserID: 1, Status: models.StatusCompleted, HoursLearned: 10},
		{UserID: 1, Status: models.StatusCompleted, HoursLearned: 14},
		{UserID: 1, Status: models.StatusInProgress, HoursLearned: 6},
		{UserID: 1, Status: models.StatusNotStarted},
		{UserID: 2, Status: models.StatusCompleted, HoursLearned: 40},
	}
	for i := range courses {
		_, err := courseRepo.Create(context.Background(), &courses[i])
		require.NoError(t, err)
		certificateRepo.courseOwner[courses[i].ID] = courses[i].UserID
	}
	_, err := certificateRepo.Create(context.Background(), &models.Certificate{CourseID: courses[0].ID, FileURL: "/uploads/a.pdf"})
	require.NoError(t, err)

	stats, err := service.GetDashboardStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 2, stats.CompletedCourses)
	assert.Equal(t, 1, stats.ActiveCourses)
	assert.Equal(t, 1, stats.TotalCertificates)
	assert.Equal(t, 30.0, stats.TotalHoursLearned)
}

func TestGetAnalyticsIsScopedToUser(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	certificateRepo := newFakeCertificateRepo()
	service := NewAnalyticsService(courseRepo, certificateRepo)

	mine := models.Course{UserID: 1, Category: "Programming", Status: models.StatusCompleted, HoursLearned: 3, EndDate: time.Now()}
	theirs := models.Course{UserID: 2, Category: "Design", Status: models.StatusCompleted, HoursLearned: 50, EndDate: time.Now()}
	_, err := courseRepo.Create(context.Background(), &mine)
	require.NoError(t, err)
	_, err = courseRepo.Create(context.Background(), &theirs)
	require.NoError(t, err)

	analytics, err := service.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, analytics.DashboardStats.TotalCourses)
	require.Len(t, analytics.CategoryDistribution, 1)
	assert.Equal(t, "Programming", analytics.CategoryDistribution[0].Category)
	assert.Equal(t, 100, analytics.CategoryDistribution[0].Percentage)
	assert.Len(t, analytics.MonthlyStats, 6)
}
