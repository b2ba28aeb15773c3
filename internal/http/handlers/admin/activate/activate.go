// Package activate реализует HTTP-обработчик подтверждения вложений администратором.
//
// Handler переводит вложение из статуса PENDING в ACTIVE после проверки
// банковского перевода и отправляет инвестору уведомление.
package activate

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

// Handler управляет HTTP-запросами на активацию вложений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики активации вложения.
type Service interface {
	Activate(ctx context.Context, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Активировать вложение
// @Description Переводит вложение из PENDING в ACTIVE, запуская отсчет срока созревания.
// @Tags Admin
// @Produce  json
// @Param id path string true "ID вложения"
// @Success 200 {object} response.Response "Вложение активировано"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Вложение не найдено"
// @Failure 409 {object} response.ErrorResponse "Вложение уже обработано"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/investments/{id}/activate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.activate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Activate(r.Context(), id); err != nil {
		log.Error("failed to activate investment", sl.Err(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("investment not found"))
		case errors.Is(err, models.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("investment is not pending"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not activate investment"))
		}
		return
	}

	log.Info("investment activated", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
