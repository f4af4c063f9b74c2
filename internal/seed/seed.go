package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/skillsphere/skillsphere/internal/app/models"
	appRepos "github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/pkg/auth"
)

const demoEmail = "demo@skillsphere.app"

// CreateDemoData inserts a demo account with a handful of courses so a fresh
// installation has something to show. Running it twice is a no-op.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	certificateRepo := appRepos.NewCertificateRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Msg("Demo data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	hashed, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	user := &appModels.User{
		Email:    demoEmail,
		Password: hashed,
		Name:     "Demo Learner",
	}
	if _, err := userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	now := time.Now()
	courses := []appModels.Course{
		{
			UserID:       user.ID,
			Title:        "Cloud Practitioner Essentials",
			Platform:     "AWS Academy",
			Category:     "Cloud Computing",
			StartDate:    now.AddDate(0, -3, 0),
			EndDate:      now.AddDate(0, -1, 0),
			Status:       appModels.StatusCompleted,
			Progress:     100,
			HoursLearned: 24,
		},
		{
			UserID:       user.ID,
			Title:        "Go Backend Development",
			Platform:     "Udemy",
			Category:     "Programming",
			StartDate:    now.AddDate(0, -1, 0),
			EndDate:      now.AddDate(0, 1, 0),
			Status:       appModels.StatusInProgress,
			Progress:     45,
			HoursLearned: 12.5,
		},
		{
			UserID:    user.ID,
			Title:     "SQL Fundamentals",
			Platform:  "Coursera",
			Category:  "Databases",
			StartDate: now.AddDate(0, 0, 3),
			EndDate:   now.AddDate(0, 2, 0),
			Status:    appModels.StatusNotStarted,
		},
	}

	for i := range courses {
		if _, err := courseRepo.Create(ctx, &courses[i]); err != nil {
			return err
		}
	}

	certificate := &appModels.Certificate{
		CourseID: courses[0].ID,
		FileURL:  "/uploads/certificates/demo-cloud-practitioner.pdf",
	}
	if _, err := certificateRepo.Create(ctx, certificate); err != nil {
		return err
	}

	lgr.Info().Int64("userID", user.ID).Msg("Demo data seeded")
	return nil
}
