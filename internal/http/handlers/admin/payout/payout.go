// Package payout реализует HTTP-обработчик подтверждения выплат администратором.
//
// Handler переводит вложение из статуса WITHDRAWAL_PENDING в PAID,
// учитывает выплаченную доходность в общей статистике и уведомляет инвестора.
package payout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Handler управляет HTTP-запросами на подтверждение выплат.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подтверждения выплаты.
type Service interface {
	ConfirmPayout(ctx context.Context, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтвердить выплату
// @Description Переводит вложение из WITHDRAWAL_PENDING в PAID и учитывает выплату в статистике.
// @Tags Admin
// @Produce  json
// @Param id path string true "ID вложения"
// @Success 200 {object} response.Response "Выплата подтверждена"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Вложение не найдено"
// @Failure 409 {object} response.ErrorResponse "Вложение не ожидает выплату"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/investments/{id}/payout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.payout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.ConfirmPayout(r.Context(), id); err != nil {
		log.Error("failed to confirm payout", sl.Err(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("investment not found"))
		case errors.Is(err, models.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("investment is not awaiting payout"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not confirm payout"))
		}
		return
	}

	log.Info("payout confirmed", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
