package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
)

// CourseUpdate carries the partial fields of a course update; nil fields are
// left untouched.
type CourseUpdate struct {
	Title        *string
	Platform     *string
	Category     *string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *models.CourseStatus
	Progress     *int
	HoursLearned *float64
}

// ICourseRepository defines the interface for course database operations.
// Every method is scoped to the owning user's id; a course belonging to
// another user behaves exactly like a missing one.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	ListOwned(ctx context.Context, userID int64) ([]models.Course, error)
	GetOwnedByID(ctx context.Context, userID, courseID int64) (*models.Course, error)
	Update(ctx context.Context, userID, courseID int64, update CourseUpdate) error
	Delete(ctx context.Context, userID, courseID int64) error
	MarkCompleted(ctx context.Context, userID, courseID int64) error
	ListOwnedDueBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Course, error)
	WithTx(tx pgx.Tx) ICourseRepository
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DB) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CourseRepository) WithTx(tx pgx.Tx) ICourseRepository {
	return &CourseRepository{db: tx, sb: r.sb}
}

const courseColumns = "id, user_id, title, platform, category, start_date, end_date, status, progress, hours_learned, created_at, updated_at"

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.UserID, &course.Title, &course.Platform, &course.Category,
		&course.StartDate, &course.EndDate, &course.Status, &course.Progress,
		&course.HoursLearned, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Course, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID, &course.UserID, &course.Title, &course.Platform, &course.Category,
			&course.StartDate, &course.EndDate, &course.Status, &course.Progress,
			&course.HoursLearned, &course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Create inserts a new course owned by course.UserID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("user_id", "title", "platform", "category", "start_date", "end_date", "status", "progress", "hours_learned").
		Values(course.UserID, course.Title, course.Platform, course.Category,
			course.StartDate, course.EndDate, course.Status, course.Progress, course.HoursLearned).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error inserting course: %w", err)
	}

	logger.Info().Int64("courseID", course.ID).Int64("userID", course.UserID).Msg("Course created")
	return course.ID, nil
}

// ListOwned retrieves all courses owned by a user, newest-created first
func (r *CourseRepository) ListOwned(ctx context.Context, userID int64) ([]models.Course, error) {
	builder := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	return r.queryCourses(ctx, builder)
}

// GetOwnedByID retrieves a course by id scoped to its owner. A course that
// does not exist or belongs to another user surfaces as
// apperrors.ErrCourseNotFound.
func (r *CourseRepository) GetOwnedByID(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"id": courseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error scanning course row by ID")
		return nil, fmt.Errorf("error querying course ID=%d: %w", courseID, err)
	}
	return course, nil
}

// Update applies a partial update to an owned course
func (r *CourseRepository) Update(ctx context.Context, userID, courseID int64, update CourseUpdate) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Platform != nil {
		updates["platform"] = *update.Platform
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		updates["end_date"] = *update.EndDate
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.Progress != nil {
		updates["progress"] = *update.Progress
	}
	if update.HoursLearned != nil {
		updates["hours_learned"] = *update.HoursLearned
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(updates).
		Where(squirrel.Eq{"id": courseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course ID=%d: %w", courseID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("courseID", courseID).Int64("userID", userID).Msg("Attempted to update missing or unowned course")
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes an owned course; certificates cascade at the schema level
func (r *CourseRepository) Delete(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": courseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course ID=%d: %w", courseID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("courseID", courseID).Int64("userID", userID).Msg("Attempted to delete missing or unowned course")
		return apperrors.ErrCourseNotFound
	}

	logger.Info().Int64("courseID", courseID).Msg("Course deleted")
	return nil
}

// MarkCompleted unconditionally sets an owned course to COMPLETED with full progress
func (r *CourseRepository) MarkCompleted(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"status":     models.StatusCompleted,
			"progress":   100,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": courseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark completed query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing mark completed query")
		return fmt.Errorf("error completing course ID=%d: %w", courseID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// ListOwnedDueBetween retrieves not-yet-completed owned courses whose end date
// falls inside [from, to]. Used by the notification deriver.
func (r *CourseRepository) ListOwnedDueBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Course, error) {
	builder := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  []models.CourseStatus{models.StatusNotStarted, models.StatusInProgress},
		}).
		Where(squirrel.GtOrEq{"end_date": from}).
		Where(squirrel.LtOrEq{"end_date": to}).
		OrderBy("end_date ASC")
	return r.queryCourses(ctx, builder)
}
