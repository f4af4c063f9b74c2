package dto

// DashboardStats summarizes one user's course collection
type DashboardStats struct {
	TotalCourses      int     `json:"totalCourses" example:"4"`
	CompletedCourses  int     `json:"completedCourses" example:"2"`
	ActiveCourses     int     `json:"activeCourses" example:"1"`
	TotalCertificates int     `json:"totalCertificates" example:"3"`
	TotalHoursLearned float64 `json:"totalHoursLearned" example:"120.5"`
}

// MonthlyStat is one calendar-month bucket of the 6-month analytics window
type MonthlyStat struct {
	Month            string  `json:"month" example:"Jan 2025"`
	Hours            float64 `json:"hours" example:"20"`
	CoursesCompleted int     `json:"coursesCompleted" example:"1"`
}

// CategoryStat is the per-category share of one user's courses
type CategoryStat struct {
	Category   string `json:"category" example:"Cloud Computing"`
	Count      int    `json:"count" example:"2"`
	Percentage int    `json:"percentage" example:"50"`
}

// AnalyticsResponse is the full analytics payload for one user
type AnalyticsResponse struct {
	MonthlyStats         []MonthlyStat  `json:"monthlyStats"`
	CategoryDistribution []CategoryStat `json:"categoryDistribution"`
	DashboardStats       DashboardStats `json:"dashboardStats"`
}
