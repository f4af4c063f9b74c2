package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
	"github.com/skillsphere/skillsphere/internal/pkg/filestorage"
	"github.com/skillsphere/skillsphere/internal/pkg/helpers"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
	"github.com/skillsphere/skillsphere/internal/pkg/validation"
)

const certificateSubdir = "certificates"

// CourseService handles course CRUD and certificate uploads
type CourseService struct {
	courseRepo      repositories.ICourseRepository
	certificateRepo repositories.ICertificateRepository
	fileStorage     filestorage.FileStorage
	txRunner        TxRunner
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	certificateRepo repositories.ICertificateRepository,
	fileStorage filestorage.FileStorage,
	txRunner TxRunner,
) *CourseService {
	return &CourseService{
		courseRepo:      courseRepo,
		certificateRepo: certificateRepo,
		fileStorage:     fileStorage,
		txRunner:        txRunner,
	}
}

// ListCourses returns all courses owned by the user with their certificates
// attached.
func (s *CourseService) ListCourses(ctx context.Context, userID int64) ([]models.Course, error) {
	courses, err := s.courseRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachCertificates(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns one owned course with its certificates attached
func (s *CourseService) GetCourse(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetOwnedByID(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	certificates, err := s.certificateRepo.ListByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Certificates = certificates
	return course, nil
}

func (s *CourseService) attachCertificates(ctx context.Context, courses []models.Course) error {
	courseIDs := make([]int64, len(courses))
	for i := range courses {
		courseIDs[i] = courses[i].ID
	}

	grouped, err := s.certificateRepo.ListByCourseIDs(ctx, courseIDs)
	if err != nil {
		return err
	}

	for i := range courses {
		certificates := grouped[courses[i].ID]
		if certificates == nil {
			certificates = []models.Certificate{}
		}
		courses[i].Certificates = certificates
	}
	return nil
}

// validateCreate collects all field errors for a course creation request and
// returns the parsed date and status values.
func (s *CourseService) validateCreate(req *dto.CreateCourseRequest) (startDate, endDate time.Time, status models.CourseStatus, err error) {
	verr := &apperrors.ValidationError{}

	if strings.TrimSpace(req.Title) == "" {
		verr.Add("title", "title is required")
	}
	if strings.TrimSpace(req.Platform) == "" {
		verr.Add("platform", "platform is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		verr.Add("category", "category is required")
	}

	if req.StartDate == "" {
		verr.Add("startDate", "startDate is required")
	} else if startDate, err = helpers.ParseDate(req.StartDate); err != nil {
		verr.Add("startDate", "startDate must be a valid date")
	}

	if req.EndDate == "" {
		verr.Add("endDate", "endDate is required")
	} else if endDate, err = helpers.ParseDate(req.EndDate); err != nil {
		verr.Add("endDate", "endDate must be a valid date")
	}

	status = models.StatusNotStarted
	if req.Status != "" {
		parsed, ok := models.ParseCourseStatus(req.Status)
		if !ok {
			verr.Add("status", "status must be one of NOT_STARTED, IN_PROGRESS, COMPLETED")
		} else {
			status = parsed
		}
	}

	if req.Progress != nil {
		rangeCheck := validation.IntRangeValidation{Value: *req.Progress, Min: 0, Max: 100}
		if !rangeCheck.Validate() {
			verr.Add("progress", "progress must be between 0 and 100")
		}
	}
	if req.HoursLearned != nil && *req.HoursLearned < 0 {
		verr.Add("hoursLearned", "hoursLearned cannot be negative")
	}

	return startDate, endDate, status, verr.ErrOrNil()
}

// CreateCourse creates a course and, when a certificate file is uploaded,
// stores the file and attaches the certificate record in the same
// transaction.
func (s *CourseService) CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest, certificateFile *multipart.FileHeader) (*models.Course, error) {
	startDate, endDate, status, err := s.validateCreate(req)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		UserID:       userID,
		Title:        strings.TrimSpace(req.Title),
		Platform:     strings.TrimSpace(req.Platform),
		Category:     strings.TrimSpace(req.Category),
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
		Progress:     0,
		HoursLearned: 0,
	}
	if req.Progress != nil {
		course.Progress = *req.Progress
	}
	if req.HoursLearned != nil {
		course.HoursLearned = *req.HoursLearned
	}

	fileURL, err := s.fileStorage.SaveFileWithPath(certificateFile, certificateSubdir)
	if err != nil {
		return nil, fmt.Errorf("error saving certificate file: %w", err)
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.courseRepo.WithTx(tx).Create(ctx, course); err != nil {
			return err
		}
		if fileURL != "" {
			certificate := &models.Certificate{CourseID: course.ID, FileURL: fileURL}
			if _, err := s.certificateRepo.WithTx(tx).Create(ctx, certificate); err != nil {
				return err
			}
			course.Certificates = []models.Certificate{*certificate}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if course.Certificates == nil {
		course.Certificates = []models.Certificate{}
	}
	return course, nil
}

// validateUpdate collects field errors for a partial update and converts the
// request into a repository-level CourseUpdate.
func (s *CourseService) validateUpdate(req *dto.UpdateCourseRequest) (repositories.CourseUpdate, error) {
	verr := &apperrors.ValidationError{}
	update := repositories.CourseUpdate{
		Progress:     req.Progress,
		HoursLearned: req.HoursLearned,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			verr.Add("title", "title cannot be empty")
		} else {
			update.Title = &title
		}
	}
	if req.Platform != nil {
		platform := strings.TrimSpace(*req.Platform)
		if platform == "" {
			verr.Add("platform", "platform cannot be empty")
		} else {
			update.Platform = &platform
		}
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			verr.Add("category", "category cannot be empty")
		} else {
			update.Category = &category
		}
	}

	if req.StartDate != nil {
		startDate, err := helpers.ParseDate(*req.StartDate)
		if err != nil {
			verr.Add("startDate", "startDate must be a valid date")
		} else {
			update.StartDate = &startDate
		}
	}
	if req.EndDate != nil {
		endDate, err := helpers.ParseDate(*req.EndDate)
		if err != nil {
			verr.Add("endDate", "endDate must be a valid date")
		} else {
			update.EndDate = &endDate
		}
	}

	if req.Status != nil {
		status, ok := models.ParseCourseStatus(*req.Status)
		if !ok {
			verr.Add("status", "status must be one of NOT_STARTED, IN_PROGRESS, COMPLETED")
		} else {
			update.Status = &status
		}
	}

	if req.Progress != nil {
		rangeCheck := validation.IntRangeValidation{Value: *req.Progress, Min: 0, Max: 100}
		if !rangeCheck.Validate() {
			verr.Add("progress", "progress must be between 0 and 100")
		}
	}
	if req.HoursLearned != nil && *req.HoursLearned < 0 {
		verr.Add("hoursLearned", "hoursLearned cannot be negative")
	}

	return update, verr.ErrOrNil()
}

// UpdateCourse applies a partial update to an owned course. An uploaded
// certificate file is appended as a new certificate record in the same
// transaction; existing certificates are never replaced.
func (s *CourseService) UpdateCourse(ctx context.Context, userID, courseID int64, req *dto.UpdateCourseRequest, certificateFile *multipart.FileHeader) (*models.Course, error) {
	update, err := s.validateUpdate(req)
	if err != nil {
		return nil, err
	}

	fileURL, err := s.fileStorage.SaveFileWithPath(certificateFile, certificateSubdir)
	if err != nil {
		return nil, fmt.Errorf("error saving certificate file: %w", err)
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		courseRepo := s.courseRepo.WithTx(tx)
		if fileURL == "" && !hasUpdates(update) {
			// Nothing to change, but the course must still exist and be owned
			_, err := courseRepo.GetOwnedByID(ctx, userID, courseID)
			return err
		}
		if hasUpdates(update) {
			if err := courseRepo.Update(ctx, userID, courseID, update); err != nil {
				return err
			}
		} else if fileURL != "" {
			// Ownership check before attaching a certificate alone
			if _, err := courseRepo.GetOwnedByID(ctx, userID, courseID); err != nil {
				return err
			}
		}
		if fileURL != "" {
			certificate := &models.Certificate{CourseID: courseID, FileURL: fileURL}
			if _, err := s.certificateRepo.WithTx(tx).Create(ctx, certificate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCourse(ctx, userID, courseID)
}

func hasUpdates(update repositories.CourseUpdate) bool {
	return update.Title != nil || update.Platform != nil || update.Category != nil ||
		update.StartDate != nil || update.EndDate != nil || update.Status != nil ||
		update.Progress != nil || update.HoursLearned != nil
}

// DeleteCourse removes an owned course; its certificates cascade
func (s *CourseService) DeleteCourse(ctx context.Context, userID, courseID int64) error {
	if err := s.courseRepo.Delete(ctx, userID, courseID); err != nil {
		return err
	}
	logger.Info().Int64("courseID", courseID).Int64("userID", userID).Msg("Course removed")
	return nil
}

// MarkCompleted sets an owned course to COMPLETED with progress 100 and
// returns the refreshed course. The operation is idempotent.
func (s *CourseService) MarkCompleted(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	if err := s.courseRepo.MarkCompleted(ctx, userID, courseID); err != nil {
		return nil, err
	}
	return s.GetCourse(ctx, userID, courseID)
}
