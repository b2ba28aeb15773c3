package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/investment-club/internal/http/middlewarectx"
	"github.com/magabrotheeeer/investment-club/internal/http/response"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка вложений.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Investment, error)
	Summary(ctx context.Context, userUID string) (*models.Summary, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список вложений пользователя
// @Description Возвращает все вложения текущего пользователя и сводку по доходности.
// @Tags Investments
// @Produce  json
// @Success 200 {object} map[string]any "Вложения и сводка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /investments/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.investment.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list investments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list investments"))
		return
	}

	summary, err := h.service.Summary(r.Context(), userUID)
	if err != nil {
		log.Error("failed to get summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get summary"))
		return
	}

	log.Info("list investments", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count":  len(res),
		"investments": res,
		"summary":     summary,
	}))
}
