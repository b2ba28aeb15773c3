package withdrawals

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

// Service описывает интерфейс бизнес-логики списка заявок на выплату.
type Service interface {
	ListWithdrawalRequests(ctx context.Context) ([]*models.InvestmentInfo, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заявки на выплату
// @Description Возвращает все вложения в статусе WITHDRAWAL_PENDING с именами инвесторов.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Заявки"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /admin/investments/withdrawals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.withdrawals"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListWithdrawalRequests(r.Context())
	if err != nil {
		log.Error("failed to list withdrawal requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list withdrawal requests"))
		return
	}

	log.Info("list withdrawal requests", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count":  len(res),
		"investments": res,
	}))
}
