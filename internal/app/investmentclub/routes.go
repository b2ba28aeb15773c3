// Package investmentclub предоставляет маршруты для основного приложения.
package investmentclub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/activate"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/banklist"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/bankupdate"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/block"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/payout"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/pending"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/stats"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/admin/withdrawals"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/bank/coordinates"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/catalog/plans"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/health"
	investmentcreate "github.com/magabrotheeeer/investment-club/internal/http/handlers/investment/create"
	investmentlist "github.com/magabrotheeeer/investment-club/internal/http/handlers/investment/list"
	"github.com/magabrotheeeer/investment-club/internal/http/handlers/investment/withdraw"
	notificationlist "github.com/magabrotheeeer/investment-club/internal/http/handlers/notification/list"
	"github.com/magabrotheeeer/investment-club/internal/http/middlewarectx"
	adminservice "github.com/magabrotheeeer/investment-club/internal/services/admin"
	authservice "github.com/magabrotheeeer/investment-club/internal/services/auth"
	investmentservice "github.com/magabrotheeeer/investment-club/internal/services/investment"
	notificationservice "github.com/magabrotheeeer/investment-club/internal/services/notification"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, telegramSupport string,
	authService *authservice.AuthService,
	investmentService *investmentservice.InvestmentService,
	adminService *adminservice.AdminService,
	notificationService *notificationservice.NotificationService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/plans", plans.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/investments", investmentcreate.New(logger, investmentService).ServeHTTP)
			r.Get("/investments/list", investmentlist.New(logger, investmentService).ServeHTTP)
			r.Post("/investments/{id}/withdraw", withdraw.New(logger, investmentService).ServeHTTP)
			r.Get("/notifications", notificationlist.New(logger, notificationService).ServeHTTP)
			r.Get("/banks/{bankName}", coordinates.New(logger, investmentService, telegramSupport).ServeHTTP)

			// Группа администратора
			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Get("/investments/pending", pending.New(logger, adminService).ServeHTTP)
				r.Get("/investments/withdrawals", withdrawals.New(logger, adminService).ServeHTTP)
				r.Post("/investments/{id}/activate", activate.New(logger, adminService).ServeHTTP)
				r.Post("/investments/{id}/payout", payout.New(logger, adminService).ServeHTTP)
				r.Get("/banks", banklist.New(logger, adminService).ServeHTTP)
				r.Put("/banks/{id}", bankupdate.New(logger, adminService).ServeHTTP)
				r.Post("/users/{uid}/block", block.New(logger, adminService).ServeHTTP)
				r.Get("/stats", stats.New(logger, adminService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
