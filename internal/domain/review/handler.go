package review

import (
	"errors"
	"net/http"
	"strconv"

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

// Create godoc
// @Summary Write a review
// @Tags Reviews
// @Security BearerAuth
// @Param request body CreateReviewRequest true "gymId, rating, text and optional category scores"
// @Success 201 {object} View
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/reviews [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr) && verr.Missing:
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Missing required fields", verr.Fields)
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Ratings must be between 1 and 5", verr.Fields)
		case errors.Is(err, ErrGymNotFound):
			response.NotFound(c, "Gym not found")
		default:
			h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create review")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// List godoc
// @Summary List reviews
// @Tags Reviews
// @Param gymId query int false "Gym id"
// @Param userId query int false "Author id"
// @Param rating query int false "Keep ratings in [rating, rating+1)"
// @Param sort query string false "recent, highest, lowest, helpful"
// @Success 200 {object} ListResponse
// @Router /api/reviews [get]
func (h *Handler) List(c *gin.Context) {
	f := ListFilters{Sort: c.DefaultQuery("sort", SortRecent)}
	f.GymID, _ = strconv.ParseInt(c.Query("gymId"), 10, 64)
	f.UserID, _ = strconv.ParseInt(c.Query("userId"), 10, 64)
	f.Rating, _ = strconv.Atoi(c.Query("rating"))
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))

	res, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list reviews")
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}
	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, reviewID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Not authorized to delete this review")
		default:
			h.logger.Error().Err(err).Int64("review_id", reviewID).Msg("failed to delete review")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ToggleHelpful(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}
	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	action, err := h.svc.ToggleHelpful(c.Request.Context(), userID, reviewID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Review not found")
			return
		}
		h.logger.Error().Err(err).Int64("review_id", reviewID).Msg("failed to toggle helpful")
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, HelpfulResponse{Action: action})
}

func (h *Handler) Report(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}
	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.svc.Report(c.Request.Context(), userID, reviewID, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Reason required")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Review not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Already reported")
		default:
			h.logger.Error().Err(err).Int64("review_id", reviewID).Msg("failed to report review")
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"success": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return 0, false
	}
	return id, true
}
