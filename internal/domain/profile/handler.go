package profile

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

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} Profile
// @Failure 404 {object} map[string]interface{}
// @Router /api/user/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	p, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch profile")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch profile")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags Profile
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Partial profile"
// @Success 200 {object} Profile
// @Router /api/user/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to update profile")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update profile")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// GetReviews godoc
// @Summary List the caller's reviews
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/user/reviews [get]
func (h *Handler) GetReviews(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	items, err := h.service.Reviews(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch user reviews")
		metrics.IncDegraded("user.reviews")
		items = []UserReview{}
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": items})
}
