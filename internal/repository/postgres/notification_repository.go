package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type NotificationRepository struct {
	db Queryer
}

func NewNotificationRepository(db Queryer) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// NotificationsByUser returns the notifications of userID in insertion order.
func (r *NotificationRepository) NotificationsByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	q, args, err := sq.Select(
		"id",
		"user_id",
		"title",
		"message",
		"category",
		"read",
		"related_id",
		"created_at",
	).From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}
	defer rows.Close()

	res := make([]entity.Notification, 0)

	for rows.Next() {
		var (
			n         entity.Notification
			category  string
			relatedID sql.NullString
		)

		err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &category, &n.Read, &relatedID, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		n.Category = entity.NotificationCategory(category)
		n.RelatedID = stringPtr(relatedID)

		res = append(res, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return res, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	const q = `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2 AND read = FALSE`

	tag, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	const q = `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	tag, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n entity.Notification) error {
	const q = `
	INSERT INTO notifications (id, user_id, title, message, category, read, related_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		string(n.Category),
		n.Read,
		nullableString(n.RelatedID),
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", translateErr(err))
	}

	return nil
}
