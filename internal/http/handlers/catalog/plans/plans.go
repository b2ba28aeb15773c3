package plans

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/investment-club/internal/catalog"
	"github.com/magabrotheeeer/investment-club/internal/http/response"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Список VIP-планов
// @Description Возвращает фиксированный каталог VIP-планов с суммами вложений и вариантами доходности.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Каталог планов"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"plans": catalog.Plans(),
		"banks": catalog.Banks(),
	}))
}
