// Package create реализует HTTP-обработчик регистрации новых вложений пользователя.
//
// Handler принимает JSON-запрос с выбранным планом, валидирует его, извлекает UID
// пользователя из контекста, вызывает бизнес-логику создания вложения
// и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/investment-club/internal/http/middlewarectx"
	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Handler управляет HTTP-запросами на создание вложений.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания вложения,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания вложения.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyCreateInvestment) (*models.Investment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать вложение
// @Description Регистрирует новое вложение по выбранному VIP-плану в статусе PENDING.
// @Tags Investments
// @Accept  json
// @Produce  json
// @Param request body models.DummyCreateInvestment true "Данные нового вложения"
// @Success 200 {object} map[string]any "Созданное вложение"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Неизвестный план или банк"
// @Failure 409 {object} response.ErrorResponse "Достигнут лимит одновременных вложений"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /investments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.investment.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCreateInvestment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	investment, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to create investment", sl.Err(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown plan or bank"))
		case errors.Is(err, models.ErrConcurrentLimit):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("concurrent investments limit reached"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create investment"))
		}
		return
	}

	log.Info("investment created", slog.String("id", investment.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"investment": investment,
	}))
}
