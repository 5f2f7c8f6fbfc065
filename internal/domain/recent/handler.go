package recent

import (
	"net/http"

	"findmygym/internal/domain/catalog"
	"findmygym/internal/metrics"
	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type MergeRequest struct {
	GymIDs []int64 `json:"gymIds"`
}

type Handler struct {
	svc    *Service
	logger *zerolog.Logger
}

func NewHandler(svc *Service, logger *zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// List godoc
// @Summary Recently viewed gyms
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/user/recent [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	gyms, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch recent views")
		metrics.IncDegraded("user.recent")
		gyms = []catalog.GymSummary{}
	}
	response.Success(c, http.StatusOK, gin.H{"gyms": gyms})
}

// Merge godoc
// @Summary Merge client-held recently viewed gyms
// @Tags Profile
// @Security BearerAuth
// @Param request body MergeRequest true "gymIds, most recent first"
// @Success 200 {object} map[string]interface{}
// @Router /api/user/recent [post]
func (h *Handler) Merge(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "gymIds must be a list of ids")
		return
	}

	gyms, err := h.svc.Merge(c.Request.Context(), userID, req.GymIDs)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to merge recent views")
		response.Error(c, http.StatusServiceUnavailable, response.CodeUnavailable, "Recently viewed is unavailable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"gyms": gyms})
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/recent", h.List)
	rg.POST("/user/recent", h.Merge)
}
