package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
)

// INotificationRepository defines the interface for notification database
// operations, all scoped to the owning user's id.
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (int64, error)
	ListOwned(ctx context.Context, userID int64) ([]models.Notification, error)
	UnreadMessageExists(ctx context.Context, userID int64, fragment string) (bool, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new notification for a user
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("user_id", "message", "type", "is_read").
		Values(notification.UserID, notification.Message, notification.Type, notification.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notification query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", notification.UserID).Msg("Error executing create notification query")
		return 0, fmt.Errorf("error inserting notification: %w", err)
	}

	return notification.ID, nil
}

// ListOwned retrieves all notifications for a user, newest first
func (r *NotificationRepository) ListOwned(ctx context.Context, userID int64) ([]models.Notification, error) {
	sql, args, err := r.sb.Select("id", "user_id", "message", "type", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var notification models.Notification
		err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Message,
			&notification.Type, &notification.IsRead, &notification.CreatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// UnreadMessageExists checks whether the user has an unread notification whose
// message contains the given fragment. The deriver uses this to deduplicate
// deadline reminders per course title.
func (r *NotificationRepository) UnreadMessageExists(ctx context.Context, userID int64, fragment string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		Where(squirrel.Like{"message": "%" + fragment + "%"}).
		Limit(1).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build unread exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing unread exists query")
		return false, fmt.Errorf("failed to check unread notifications: %w", err)
	}
	return exists, nil
}

// MarkRead marks a notification as read scoped to (id, userID). A request for
// another user's notification matches zero rows and succeeds silently.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("notificationID", notificationID).Msg("Error executing mark read query")
		return fmt.Errorf("error marking notification ID=%d read: %w", notificationID, err)
	}
	return nil
}
