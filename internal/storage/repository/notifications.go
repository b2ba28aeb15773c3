package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/investment-club/internal/models"
)

// CreateNotification добавляет запись в ленту уведомлений.
// Лента только пополняется, записи никогда не удаляются.
func (s *Storage) CreateNotification(ctx context.Context, n models.Notification) error {
	const op = "storage.CreateNotification"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO notifications (id, user_uid, title, message, type, created_at, is_read)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.DB.ExecContext(ctx, query,
		n.ID, n.UserUID, n.Title, n.Message, n.Type, n.CreatedAt, n.IsRead)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListNotificationsByUser возвращает ленту пользователя,
// самые свежие записи первыми.
func (s *Storage) ListNotificationsByUser(ctx context.Context, userUID string) ([]*models.Notification, error) {
	const op = "storage.ListNotificationsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, message, type, created_at, is_read
			  FROM notifications
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Notification
	for rows.Next() {
		var item models.Notification
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Message,
			&item.Type, &item.CreatedAt, &item.IsRead); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
