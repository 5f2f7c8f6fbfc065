package deal

import (
	"net/http"

	"findmygym/internal/metrics"
	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc    *Service
	logger *zerolog.Logger
}

func NewHandler(svc *Service, logger *zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// List godoc
// @Summary Current deals
// @Tags Deals
// @Success 200 {object} ListResponse
// @Router /api/deals [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.Active(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch deals")
		metrics.IncDegraded("deals.list")
		items = []View{}
	}
	response.Success(c, http.StatusOK, ListResponse{Deals: items})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/deals", h.List)
}
