package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
)

// ICertificateRepository defines the interface for certificate database
// operations. Certificates are created on course create/update with an
// uploaded file and removed only via the course delete cascade.
type ICertificateRepository interface {
	Create(ctx context.Context, certificate *models.Certificate) (int64, error)
	ListByCourseID(ctx context.Context, courseID int64) ([]models.Certificate, error)
	ListByCourseIDs(ctx context.Context, courseIDs []int64) (map[int64][]models.Certificate, error)
	CountOwned(ctx context.Context, userID int64) (int, error)
	WithTx(tx pgx.Tx) ICertificateRepository
}

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db DB) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CertificateRepository) WithTx(tx pgx.Tx) ICertificateRepository {
	return &CertificateRepository{db: tx, sb: r.sb}
}

// Create inserts a new certificate for a course
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) (int64, error) {
	sql, args, err := r.sb.Insert("certificates").
		Columns("course_id", "file_url").
		Values(certificate.CourseID, certificate.FileURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create certificate query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&certificate.ID, &certificate.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", certificate.CourseID).Msg("Error executing create certificate query")
		return 0, fmt.Errorf("error inserting certificate: %w", err)
	}

	logger.Info().Int64("certificateID", certificate.ID).Int64("courseID", certificate.CourseID).Msg("Certificate created")
	return certificate.ID, nil
}

// ListByCourseID retrieves all certificates attached to one course
func (r *CertificateRepository) ListByCourseID(ctx context.Context, courseID int64) ([]models.Certificate, error) {
	grouped, err := r.ListByCourseIDs(ctx, []int64{courseID})
	if err != nil {
		return nil, err
	}
	certificates := grouped[courseID]
	if certificates == nil {
		certificates = []models.Certificate{}
	}
	return certificates, nil
}

// ListByCourseIDs retrieves certificates for a set of courses, grouped by
// course id. Courses without certificates have no map entry.
func (r *CertificateRepository) ListByCourseIDs(ctx context.Context, courseIDs []int64) (map[int64][]models.Certificate, error) {
	grouped := make(map[int64][]models.Certificate, len(courseIDs))
	if len(courseIDs) == 0 {
		return grouped, nil
	}

	sql, args, err := r.sb.Select("id", "course_id", "file_url", "created_at").
		From("certificates").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list certificates query")
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var certificate models.Certificate
		if err := rows.Scan(&certificate.ID, &certificate.CourseID, &certificate.FileURL, &certificate.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning certificate row")
			return nil, fmt.Errorf("failed to scan certificate row: %w", err)
		}
		grouped[certificate.CourseID] = append(grouped[certificate.CourseID], certificate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}
	return grouped, nil
}

// CountOwned counts certificates across all courses owned by a user
func (r *CertificateRepository) CountOwned(ctx context.Context, userID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("certificates c").
		Join("courses co ON c.course_id = co.id").
		Where(squirrel.Eq{"co.user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count certificates query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing count certificates query")
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return count, nil
}
