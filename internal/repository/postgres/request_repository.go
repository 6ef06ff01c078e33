package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

var requestColumns = []string{
	"id",
	"kind",
	"employee_id",
	"leave_type",
	"period_start",
	"period_end",
	"amount",
	"reason",
	"status",
	"comments",
	"decided_by",
	"attachment_key",
	"created_at",
	"updated_at",
}

type RequestRepository struct {
	db Queryer
}

func NewRequestRepository(db Queryer) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req entity.Request) error {
	var start, end any

	if req.Period != nil {
		start, end = req.Period.Start, req.Period.End
	}

	var amount any

	if req.Amount != nil {
		amount = req.Amount.StringFixed(2) //nolint:mnd
	}

	stmt := sq.Insert("requests").Columns(requestColumns...).Values(
		req.ID,
		string(req.Kind),
		req.EmployeeID,
		string(req.LeaveType),
		start,
		end,
		amount,
		req.Reason,
		string(req.Status),
		nullableString(req.Comments),
		nullableString(req.DecidedBy),
		nullableString(req.AttachmentKey),
		req.CreatedAt,
		req.UpdatedAt,
	).PlaceholderFormat(sq.Dollar)

	q, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("insert request: %w", translateErr(err))
	}

	return nil
}

func (r *RequestRepository) RequestByID(ctx context.Context, id string) (entity.Request, error) {
	q, args, err := sq.Select(requestColumns...).From("requests").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Request{}, fmt.Errorf("build select: %w", err)
	}

	req, err := scanRequest(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return entity.Request{}, translateErr(err)
	}

	return req, nil
}

// RequestsByQuery returns matching requests, newest first.
func (r *RequestRepository) RequestsByQuery(ctx context.Context, f entity.RequestQuery) ([]entity.Request, error) {
	res := make([]entity.Request, 0)

	if len(f.EmployeeIDs) == 0 {
		return res, nil
	}

	stmt := sq.Select(requestColumns...).From("requests").
		Where(sq.Eq{"employee_id": f.EmployeeIDs}).
		PlaceholderFormat(sq.Dollar)

	if f.Kind != "" {
		stmt = stmt.Where(sq.Eq{"kind": string(f.Kind)})
	}

	if f.Status != "" && f.Status != entity.StatusAll {
		stmt = stmt.Where(sq.Eq{"status": string(f.Status)})
	}

	q, args, err := stmt.OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}

		res = append(res, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}

	return res, nil
}

// TransitionRequest updates the row only while it is still PENDING, so two concurrent decisions
// cannot both succeed.
func (r *RequestRepository) TransitionRequest(ctx context.Context, t entity.Transition) (entity.Request, error) {
	q, args, err := sq.Update("requests").
		Set("status", string(t.To)).
		Set("comments", nullableString(t.Comments)).
		Set("decided_by", t.DecidedBy).
		Set("updated_at", t.At).
		Where(sq.Eq{"id": t.RequestID, "status": string(entity.StatusPending)}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Request{}, fmt.Errorf("build update: %w", err)
	}

	req, err := scanRequest(r.db.QueryRow(ctx, q, args...))
	if err == nil {
		return req, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return entity.Request{}, fmt.Errorf("update request: %w", err)
	}

	return entity.Request{}, r.notUpdatable(ctx, t.RequestID)
}

func (r *RequestRepository) SetAttachment(ctx context.Context, id, key string) error {
	q, args, err := sq.Update("requests").
		Set("attachment_key", key).
		Where(sq.Eq{"id": id, "status": string(entity.StatusPending)}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update attachment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.notUpdatable(ctx, id)
	}

	return nil
}

// notUpdatable tells a missing request apart from one that already left PENDING.
func (r *RequestRepository) notUpdatable(ctx context.Context, id string) error {
	const q = `SELECT status FROM requests WHERE id = $1`

	var status string

	err := r.db.QueryRow(ctx, q, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return fmt.Errorf("select status: %w", err)
	}

	return entity.ErrNotPending
}

func scanRequest(row scanner) (entity.Request, error) {
	var (
		req           entity.Request
		kind          string
		leaveType     string
		status        string
		periodStart   sql.NullTime
		periodEnd     sql.NullTime
		amount        decimal.NullDecimal
		comments      sql.NullString
		decidedBy     sql.NullString
		attachmentKey sql.NullString
	)

	err := row.Scan(
		&req.ID,
		&kind,
		&req.EmployeeID,
		&leaveType,
		&periodStart,
		&periodEnd,
		&amount,
		&req.Reason,
		&status,
		&comments,
		&decidedBy,
		&attachmentKey,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return entity.Request{}, err
	}

	req.Kind = entity.RequestKind(kind)
	req.LeaveType = entity.LeaveType(leaveType)
	req.Status = entity.RequestStatus(status)
	req.Comments = stringPtr(comments)
	req.DecidedBy = stringPtr(decidedBy)
	req.AttachmentKey = stringPtr(attachmentKey)

	if periodStart.Valid && periodEnd.Valid {
		req.Period = &entity.Period{Start: dateOf(periodStart.Time), End: dateOf(periodEnd.Time)}
	}

	if amount.Valid {
		a := amount.Decimal
		req.Amount = &a
	}

	return req, nil
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
