package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
	"github.com/skillsphere/skillsphere/internal/pkg/filestorage"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
	"github.com/skillsphere/skillsphere/internal/pkg/validation"
)

const avatarSubdir = "avatars"

// UserService handles profile reads and updates
type UserService struct {
	userRepo        repositories.IUserRepository
	courseRepo      repositories.ICourseRepository
	certificateRepo repositories.ICertificateRepository
	fileStorage     filestorage.FileStorage
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	certificateRepo repositories.ICertificateRepository,
	fileStorage filestorage.FileStorage,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		certificateRepo: certificateRepo,
		fileStorage:     fileStorage,
	}
}

// GetProfile returns the user's profile with course counters and the
// achievement ladder.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	certificateCount, err := s.certificateRepo.CountOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	completedCourses := 0
	for _, course := range courses {
		if course.Status == models.StatusCompleted {
			completedCourses++
		}
	}

	return &dto.ProfileResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		Bio:               user.Bio,
		AvatarURL:         user.AvatarURL,
		CreatedAt:         user.CreatedAt,
		TotalCourses:      len(courses),
		TotalCertificates: certificateCount,
		Achievements:      buildAchievements(completedCourses, certificateCount),
	}, nil
}

// buildAchievements returns the earned badges in ladder order
func buildAchievements(completedCourses, totalCertificates int) []string {
	achievements := []string{}
	if completedCourses >= 1 {
		achievements = append(achievements, "First Course Completed")
	}
	if completedCourses >= 5 {
		achievements = append(achievements, "5 Courses Milestone")
	}
	if completedCourses >= 10 {
		achievements = append(achievements, "Dedicated Learner")
	}
	if totalCertificates >= 5 {
		achievements = append(achievements, "Certificate Collector")
	}
	return achievements
}

// UpdateProfile applies a partial profile update and stores an uploaded
// avatar image when one is present, then returns the refreshed profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, avatarFile *multipart.FileHeader) (*dto.ProfileResponse, error) {
	verr := &apperrors.ValidationError{}
	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		check := validation.NewStringValidation(trimmed).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength)
		if !check.Validate() {
			verr.Add("name", "name cannot be empty")
		} else {
			name = &trimmed
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	var avatarURL *string
	if avatarFile != nil {
		url, err := s.fileStorage.SaveFileWithPath(avatarFile, avatarSubdir)
		if err != nil {
			return nil, fmt.Errorf("error saving avatar file: %w", err)
		}
		avatarURL = &url
	}

	if name != nil || req.Bio != nil || avatarURL != nil {
		if err := s.userRepo.UpdateProfile(ctx, userID, name, req.Bio, avatarURL); err != nil {
			return nil, err
		}
		logger.Info().Int64("userID", userID).Msg("Profile updated")
	}

	return s.GetProfile(ctx, userID)
}
