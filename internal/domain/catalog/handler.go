package catalog

import (
	"errors"
	"net/http"

	"findmygym/internal/metrics"
	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	logger  *zerolog.Logger
}

func NewHandler(service *Service, logger *zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ListGyms godoc
// @Summary List gyms
// @Description Active gyms filtered by type, priceRange, q, minRating and amenities, sorted and paginated.
// @Tags Catalog
// @Produce json
// @Param page query integer false "Page number" example(1)
// @Param limit query integer false "Page size (max 50)" example(12)
// @Param sort query string false "rating, name, newest, price_low, price_high, distance"
// @Success 200 {object} ListResponse
// @Router /api/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	f := ParseListFilters(c.Request.URL.Query())

	result, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch gyms")
		metrics.IncDegraded("gyms.list")
		response.Success(c, http.StatusOK, EmptyList())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetGym godoc
// @Summary Gym detail
// @Tags Catalog
// @Produce json
// @Param slug path string true "Gym slug"
// @Success 200 {object} GymDetail
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/gyms/{slug} [get]
func (h *Handler) GetGym(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("slug"), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Gym not found")
			return
		}
		h.logger.Error().Err(err).Str("slug", c.Param("slug")).Msg("failed to fetch gym detail")
		response.Error(c, http.StatusServiceUnavailable, response.CodeUnavailable, "Database unavailable")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Featured(c *gin.Context) {
	gyms, err := h.service.Featured(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch featured gyms")
		metrics.IncDegraded("gyms.featured")
		gyms = []GymSummary{}
	}

	response.Success(c, http.StatusOK, gin.H{"gyms": gyms})
}

func (h *Handler) Compare(c *gin.Context) {
	result, err := h.service.Compare(c.Request.Context(), ParseSlugs(c.Query("slugs")))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.BadRequest(c, "Provide between 1 and 3 gym slugs")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Gym not found")
		default:
			h.logger.Error().Err(err).Msg("failed to compare gyms")
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Meta(c *gin.Context) {
	response.Success(c, http.StatusOK, GetMeta())
}
