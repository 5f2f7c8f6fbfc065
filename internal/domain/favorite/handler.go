package favorite

import (
	"errors"
	"net/http"
	"strconv"

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

// GetFavorites godoc
// @Summary List favorited gyms
// @Tags Favorites
// @Security BearerAuth
// @Success 200 {object} ListResponse
// @Router /api/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch favorites")
		metrics.IncDegraded("favorites.list")
		items = []Item{}
	}

	response.Success(c, http.StatusOK, ListResponse{Gyms: items})
}

// AddFavorite godoc
// @Summary Favorite a gym
// @Tags Favorites
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "gymId"
// @Success 201 {object} domain.Favorite
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "gymId required")
		return
	}

	fav, err := h.svc.Add(c.Request.Context(), userID, req.GymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.BadRequest(c, "gymId required")
		case errors.Is(err, ErrGymNotFound):
			response.NotFound(c, "Gym not found")
		case errors.Is(err, ErrAlreadyFavorited):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Already favorited")
		default:
			h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to add favorite")
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, fav)
}

// RemoveFavorite godoc
// @Summary Remove a gym from favorites
// @Tags Favorites
// @Security BearerAuth
// @Param gymId query int true "Gym id"
// @Success 200 {object} map[string]interface{}
// @Router /api/favorites [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	gymID, err := strconv.ParseInt(c.Query("gymId"), 10, 64)
	if err != nil || gymID <= 0 {
		response.BadRequest(c, "gymId required")
		return
	}

	if err := h.svc.Remove(c.Request.Context(), userID, gymID); err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Int64("gym_id", gymID).Msg("failed to remove favorite")
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}
