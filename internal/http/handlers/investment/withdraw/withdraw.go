// Package withdraw реализует HTTP-обработчик заявок на вывод созревших вложений.
//
// Handler принимает JSON-запрос со способом выплаты, проверяет владельца
// вложения и срок созревания через бизнес-логику и переводит вложение
// в статус ожидания выплаты.
package withdraw

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/investment-club/internal/http/middlewarectx"
	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Handler управляет HTTP-запросами на вывод средств.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики вывода средств.
type Service interface {
	RequestWithdrawal(ctx context.Context, userUID, id string, req models.DummyWithdraw) error
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
// @Summary Запросить вывод средств
// @Description Переводит созревшее активное вложение в статус ожидания выплаты.
// @Tags Investments
// @Accept  json
// @Produce  json
// @Param id path string true "ID вложения"
// @Param request body models.DummyWithdraw true "Способ выплаты"
// @Success 200 {object} response.Response "Заявка принята"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Вложение не найдено"
// @Failure 409 {object} response.ErrorResponse "Вложение не созрело или уже обработано"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /investments/{id}/withdraw [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.investment.withdraw"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyWithdraw
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.RequestWithdrawal(r.Context(), userUID, id, req); err != nil {
		log.Error("failed to request withdrawal", sl.Err(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("investment not found"))
		case errors.Is(err, models.ErrNotMatured):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("investment has not matured yet"))
		case errors.Is(err, models.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("investment is not active"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not request withdrawal"))
		}
		return
	}

	log.Info("withdrawal requested", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
