// Package sender собирает воркер рассылки email-уведомлений.
package sender

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/investment-club/internal/config"
	"github.com/magabrotheeeer/investment-club/internal/lib/smtp"
	"github.com/magabrotheeeer/investment-club/internal/rabbitmq"
	senderservice "github.com/magabrotheeeer/investment-club/internal/services/sender"
)

const (
	rabbitMaxRetries = 5
	rabbitRetryDelay = 3 * time.Second
)

// App — приложение-воркер, читающее события уведомлений из RabbitMQ
// и отправляющее письма через SMTP.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New собирает зависимости воркера: соединение с брокером и SMTP-транспорт.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitConnectionString, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(newTransport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди уведомлений до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "notifications.user", a.senderService.SendUserNotification)
	if err != nil {
		a.logger.Error("failed to start notifications.user consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("Sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
