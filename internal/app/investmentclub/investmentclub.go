package investmentclub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/investment-club/internal/cache"
	"github.com/magabrotheeeer/investment-club/internal/config"
	"github.com/magabrotheeeer/investment-club/internal/lib/jwt"
	"github.com/magabrotheeeer/investment-club/internal/migrations"
	"github.com/magabrotheeeer/investment-club/internal/rabbitmq"
	adminservice "github.com/magabrotheeeer/investment-club/internal/services/admin"
	authservice "github.com/magabrotheeeer/investment-club/internal/services/auth"
	investmentservice "github.com/magabrotheeeer/investment-club/internal/services/investment"
	notificationservice "github.com/magabrotheeeer/investment-club/internal/services/notification"
	"github.com/magabrotheeeer/investment-club/internal/storage/repository"
)

const (
	rabbitMaxRetries = 5
	rabbitRetryDelay = 3 * time.Second
)

// App — основное HTTP-приложение инвестиционного клуба.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
	rabbitCh   *amqp.Channel
}

// New собирает все зависимости приложения: базу, кэш, брокер сообщений,
// сервисы бизнес-логики и HTTP-маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.RabbitConnectionString, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		return nil, err
	}
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn, rabbitmq.GetNotificationQueues())
	if err != nil {
		rabbitConn.Close()
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	notificationService := notificationservice.NewNotificationService(db,
		rabbitmq.NewNotificationPublisher(rabbitCh), logger)
	authService := authservice.NewAuthService(db, cacheRedis, jwtMaker, cfg.AdminCredentials, logger)
	investmentService := investmentservice.NewInvestmentService(db, cacheRedis, notificationService, logger)
	adminService := adminservice.NewAdminService(db, cacheRedis, notificationService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.TelegramSupport,
		authService, investmentService, adminService, notificationService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
		rabbitCh:   rabbitCh,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.rabbitCh.Close(); cerr != nil {
			a.logger.Error("failed to close rabbitmq channel", slog.Any("err", cerr))
		}
		if cerr := a.rabbitConn.Close(); cerr != nil {
			a.logger.Error("failed to close rabbitmq connection", slog.Any("err", cerr))
		}
		a.db.DB.Close()
		return err
	}
}
