package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type MessageRepository struct {
	db Queryer
}

func NewMessageRepository(db Queryer) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m entity.Message) error {
	q, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "content", "attachment_key", "read", "created_at").
		Values(m.ID, m.SenderID, m.ReceiverID, m.Content, nullableString(m.Attachment), m.Read, m.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("insert message: %w", translateErr(err))
	}

	return nil
}

// Conversation returns both directions of the thread between a and b, oldest first.
func (r *MessageRepository) Conversation(ctx context.Context, a, b string) ([]entity.Message, error) {
	q, args, err := sq.Select("id", "sender_id", "receiver_id", "content", "attachment_key", "read", "created_at").
		From("messages").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		OrderBy("created_at", "seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	res := make([]entity.Message, 0)

	for rows.Next() {
		var (
			m          entity.Message
			attachment sql.NullString
		)

		err = rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &attachment, &m.Read, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}

		m.Attachment = stringPtr(attachment)

		res = append(res, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return res, nil
}

// MarkConversationRead flags what senderID sent to receiverID and returns how many messages changed.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, receiverID, senderID string) (int, error) {
	const q = `UPDATE messages SET read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND read = FALSE`

	tag, err := r.db.Exec(ctx, q, receiverID, senderID)
	if err != nil {
		return 0, fmt.Errorf("mark conversation read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
