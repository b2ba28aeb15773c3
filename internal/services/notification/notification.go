// Package services содержит бизнес-логику ленты уведомлений.
//
// Лента только пополняется: каждое действие жизненного цикла или сверки
// добавляет запись получателю. Добавление дополнительно публикует событие
// в RabbitMQ для воркера рассылки; публикация выполняется по возможности
// и никогда не проваливает породившую её операцию.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// NotificationRepository определяет методы для работы с лентой в хранилище.
type NotificationRepository interface {
	// CreateNotification добавляет запись в ленту.
	CreateNotification(ctx context.Context, n models.Notification) error
	// ListNotificationsByUser возвращает ленту пользователя, свежие записи первыми.
	ListNotificationsByUser(ctx context.Context, userUID string) ([]*models.Notification, error)
	// GetUser возвращает получателя — для обогащения события рассылки.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// EventPublisher публикует события уведомлений во внешнюю шину.
type EventPublisher interface {
	Publish(event any) error
}

// NotificationService реализует ленту уведомлений.
type NotificationService struct {
	repo      NotificationRepository
	publisher EventPublisher
	log       *slog.Logger
}

// NewNotificationService создает новый экземпляр NotificationService.
func NewNotificationService(repo NotificationRepository, publisher EventPublisher, log *slog.Logger) *NotificationService {
	return &NotificationService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Notify добавляет запись в ленту пользователя и публикует событие рассылки.
func (s *NotificationService) Notify(ctx context.Context, userUID, title, message, ntype string) error {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserUID:   userUID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return err
	}
	s.log.Info("notification appended",
		slog.String("user_uid", userUID), slog.String("title", title))

	event := models.NotificationEvent{
		UserUID: userUID,
		Title:   title,
		Message: message,
		Type:    ntype,
	}
	if user, err := s.repo.GetUser(ctx, userUID); err != nil {
		s.log.Warn("failed to enrich notification event", sl.Err(err))
	} else {
		event.Username = user.Username
		event.Email = user.Email
	}
	if err := s.publisher.Publish(event); err != nil {
		s.log.Warn("failed to publish notification event", sl.Err(err))
	}
	return nil
}

// List возвращает ленту пользователя, самые свежие записи первыми.
func (s *NotificationService) List(ctx context.Context, userUID string) ([]*models.Notification, error) {
	return s.repo.ListNotificationsByUser(ctx, userUID)
}
