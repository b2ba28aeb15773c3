// Package block реализует HTTP-обработчик блокировки пользователей администратором.
package block

import (
	"context"
	"encoding/json"
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

// Request — входные данные для блокировки пользователя
type Request struct {
	Blocked bool `json:"blocked"`
}

// Handler управляет HTTP-запросами на блокировку пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики блокировки пользователя.
type Service interface {
	BlockUser(ctx context.Context, userUID string, blocked bool) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заблокировать пользователя
// @Description Устанавливает или снимает блокировку входа для пользователя.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param uid path string true "UID пользователя"
// @Param request body Request true "Признак блокировки"
// @Success 200 {object} response.Response "Блокировка обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/users/{uid}/block [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.block"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	uid := chi.URLParam(r, "uid")

	if err := h.service.BlockUser(r.Context(), uid, req.Blocked); err != nil {
		log.Error("failed to update user block", sl.Err(err))
		if errors.Is(err, models.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update user block"))
		return
	}

	log.Info("user block updated", slog.String("uid", uid), slog.Bool("blocked", req.Blocked))
	render.JSON(w, r, response.OK())
}
