// Package coordinates реализует HTTP-обработчик выдачи банковских реквизитов клуба.
//
// Handler возвращает IBAN и имя держателя счета для выбранного банка,
// а также ссылку на поддержку в Telegram для отправки подтверждения перевода.
package coordinates

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

// Handler управляет HTTP-запросами на получение банковских реквизитов.
type Handler struct {
	log             *slog.Logger
	service         Service
	telegramSupport string
}

// Service описывает интерфейс бизнес-логики получения реквизитов.
type Service interface {
	BankCoordinates(ctx context.Context, bankName string) (*models.BankAccount, error)
}

// New создает новый Handler с переданными логгером, сервисом и ссылкой поддержки.
func New(log *slog.Logger, service Service, telegramSupport string) *Handler {
	return &Handler{
		log:             log,
		service:         service,
		telegramSupport: telegramSupport,
	}
}

// ServeHTTP godoc
// @Summary Реквизиты банка
// @Description Возвращает IBAN и держателя счета выбранного банка вместе со ссылкой поддержки.
// @Tags Banks
// @Produce  json
// @Param bankName path string true "Название банка"
// @Success 200 {object} map[string]any "Реквизиты"
// @Failure 404 {object} response.ErrorResponse "Банк не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /banks/{bankName} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bank.coordinates"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	bankName := chi.URLParam(r, "bankName")

	account, err := h.service.BankCoordinates(r.Context(), bankName)
	if err != nil {
		log.Error("failed to get bank coordinates", sl.Err(err))
		if errors.Is(err, models.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("bank not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get bank coordinates"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"bank_account": account,
		"support_link": h.telegramSupport,
	}))
}
