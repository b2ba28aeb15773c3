package banklist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка банковских счетов.
type Service interface {
	ListBankAccounts(ctx context.Context) ([]*models.BankAccount, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список банковских счетов клуба
// @Description Возвращает все банковские счета с реквизитами для редактирования.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Счета"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/banks [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.banklist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListBankAccounts(r.Context())
	if err != nil {
		log.Error("failed to list bank accounts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list bank accounts"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count":    len(res),
		"bank_accounts": res,
	}))
}
