// Package bankupdate реализует HTTP-обработчик обновления банковских реквизитов клуба.
package bankupdate

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

	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Handler управляет HTTP-запросами на обновление реквизитов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления реквизитов.
type Service interface {
	UpdateBankAccount(ctx context.Context, id string, req models.DummyUpdateBankAccount) error
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
// @Summary Обновить реквизиты банка
// @Description Сохраняет новый IBAN и имя держателя для счета клуба.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param id path string true "ID счета"
// @Param request body models.DummyUpdateBankAccount true "Новые реквизиты"
// @Success 200 {object} response.Response "Реквизиты обновлены"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/banks/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.bankupdate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUpdateBankAccount
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

	id := chi.URLParam(r, "id")

	if err := h.service.UpdateBankAccount(r.Context(), id, req); err != nil {
		log.Error("failed to update bank account", sl.Err(err))
		if errors.Is(err, models.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("bank account not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update bank account"))
		return
	}

	log.Info("bank account updated", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
