package services

import (
	"context"
	"math"
	"time"

	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
)

const monthlyBucketCount = 6

// AnalyticsService aggregates dashboard and chart statistics from the user's
// courses. All aggregation happens in memory over the owned course list.
type AnalyticsService struct {
	courseRepo      repositories.ICourseRepository
	certificateRepo repositories.ICertificateRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(courseRepo repositories.ICourseRepository, certificateRepo repositories.ICertificateRepository) *AnalyticsService {
	return &AnalyticsService{
		courseRepo:      courseRepo,
		certificateRepo: certificateRepo,
	}
}

// GetDashboardStats returns the headline counters for the dashboard
func (s *AnalyticsService) GetDashboardStats(ctx context.Context, userID int64) (*dto.DashboardStats, error) {
	courses, err := s.courseRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	certificateCount, err := s.certificateRepo.CountOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := buildDashboardStats(courses)
	stats.TotalCertificates = certificateCount
	return &stats, nil
}

// GetAnalytics returns monthly activity, category distribution and dashboard
// counters in one payload.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID int64) (*dto.AnalyticsResponse, error) {
	courses, err := s.courseRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]int64, len(courses))
	for i := range courses {
		courseIDs[i] = courses[i].ID
	}
	grouped, err := s.certificateRepo.ListByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	certificateCount := 0
	for _, certificates := range grouped {
		certificateCount += len(certificates)
	}

	stats := buildDashboardStats(courses)
	stats.TotalCertificates = certificateCount

	return &dto.AnalyticsResponse{
		MonthlyStats:         buildMonthlyStats(courses, time.Now()),
		CategoryDistribution: buildCategoryDistribution(courses),
		DashboardStats:       stats,
	}, nil
}

// buildMonthlyStats buckets courses by end-date month into the six calendar
// months ending at now, oldest first. Hours count every course ending in the
// bucket; coursesCompleted counts only the completed ones.
func buildMonthlyStats(courses []models.Course, now time.Time) []dto.MonthlyStat {
	stats := make([]dto.MonthlyStat, 0, monthlyBucketCount)

	for i := monthlyBucketCount - 1; i >= 0; i-- {
		// Anchor to the first of the month so late-month dates cannot skip
		// a bucket during month arithmetic
		bucket := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		stat := dto.MonthlyStat{Month: bucket.Format("Jan 2006")}

		for _, course := range courses {
			if course.EndDate.Month() != bucket.Month() || course.EndDate.Year() != bucket.Year() {
				continue
			}
			stat.Hours += course.HoursLearned
			if course.Status == models.StatusCompleted {
				stat.CoursesCompleted++
			}
		}

		stats = append(stats, stat)
	}
	return stats
}

// buildCategoryDistribution counts courses per category in first-seen order.
// Percentages are rounded shares of the total course count.
func buildCategoryDistribution(courses []models.Course) []dto.CategoryStat {
	counts := map[string]int{}
	order := []string{}
	for _, course := range courses {
		if _, seen := counts[course.Category]; !seen {
			order = append(order, course.Category)
		}
		counts[course.Category]++
	}

	total := len(courses)
	if total == 0 {
		total = 1
	}

	distribution := make([]dto.CategoryStat, 0, len(order))
	for _, category := range order {
		count := counts[category]
		distribution = append(distribution, dto.CategoryStat{
			Category:   category,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	return distribution
}

func buildDashboardStats(courses []models.Course) dto.DashboardStats {
	stats := dto.DashboardStats{TotalCourses: len(courses)}
	for _, course := range courses {
		switch course.Status {
		case models.StatusCompleted:
			stats.CompletedCourses++
		case models.StatusInProgress:
			stats.ActiveCourses++
		}
		stats.TotalHoursLearned += course.HoursLearned
	}
	return stats
}
