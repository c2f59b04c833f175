package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/entities"
	"gardgear/pkg/utils"
)

type NotificationRepositoryInterface interface {
	GetNotifications(ctx context.Context, params utils.ListParams) ([]entities.Notification, uint64, error)
	CreateNotification(ctx context.Context, recipientID uint64, message string, relatedRequestID null.Uint64) error
	MarkRead(ctx context.Context, id uint64) (*entities.Notification, error)
}

type NotificationRepository struct {
	storage *pgxpool.Pool
}

func NewNotificationRepository(storage *pgxpool.Pool) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage}
}

func (r *NotificationRepository) GetNotifications(ctx context.Context, params utils.ListParams) ([]entities.Notification, uint64, error) {
	b := sq.Select("id", "recipient_id", "message", "is_read", "related_request_id", "created_at").
		From("notifications").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
	countB := sq.Select("COUNT(*)").From("notifications").PlaceholderFormat(sq.Dollar)

	if v, ok := params.Filters["recipient"]; ok {
		b = b.Where(sq.Eq{"recipient_id": v})
		countB = countB.Where(sq.Eq{"recipient_id": v})
	}
	if v, ok := params.Filters["is_read"]; ok {
		b = b.Where(sq.Eq{"is_read": v})
		countB = countB.Where(sq.Eq{"is_read": v})
	}
	if params.Paginated {
		b = b.Limit(uint64(params.Limit)).Offset(params.Offset())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []entities.Notification
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Message, &n.IsRead, &n.RelatedRequestID, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total := uint64(len(items))
	if params.Paginated {
		query, args, err := countB.ToSql()
		if err != nil {
			return nil, 0, err
		}
		if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, recipientID uint64, message string, relatedRequestID null.Uint64) error {
	_, err := r.storage.Exec(ctx,
		"INSERT INTO notifications (recipient_id, message, related_request_id) VALUES ($1, $2, $3)",
		recipientID, message, relatedRequestID,
	)
	return err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) (*entities.Notification, error) {
	var n entities.Notification
	err := r.storage.QueryRow(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1
		 RETURNING id, recipient_id, message, is_read, related_request_id, created_at`, id,
	).Scan(&n.ID, &n.RecipientID, &n.Message, &n.IsRead, &n.RelatedRequestID, &n.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &n, nil
}
