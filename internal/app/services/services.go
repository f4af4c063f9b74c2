// Package services contains the business logic between controllers and
// repositories.
//
// Services defined in this package:
// - AuthService: Handles registration, login and token issuance
// - CourseService: Handles course CRUD and certificate uploads
// - AnalyticsService: Aggregates dashboard and chart statistics
// - NotificationService: Derives and serves deadline notifications
// - UserService: Handles profile reads and updates
package services

import (
	"context"

	"github.com/skillsphere/skillsphere/internal/db"
)

// TxRunner runs a function inside a database transaction. *db.PostgresDB
// satisfies it; tests substitute a runner that calls fn directly.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
