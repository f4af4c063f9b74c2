// Package repositories contains the persistence boundary: one repository per
// entity with narrow method contracts, built on pgx and squirrel.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgx execution methods repositories use. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so a repository can be rebound to a
// transaction with WithTx.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all entity repositories
type Repositories struct {
	UserRepository         *UserRepository
	CourseRepository       *CourseRepository
	CertificateRepository  *CertificateRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CourseRepository:       NewCourseRepository(db),
		CertificateRepository:  NewCertificateRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
