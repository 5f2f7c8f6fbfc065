package booking

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"findmygym/internal/metrics"
	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc    *Service
	logger *zerolog.Logger
}

func NewHandler(svc *Service, logger *zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// List returns the caller's bookings. Store failures answer with an empty list.
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch bookings")
		metrics.IncDegraded("bookings.list")
		items = []View{}
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

// Create godoc
// @Summary Request a trial visit or inquiry
// @Tags Bookings
// @Security BearerAuth
// @Param request body CreateBookingRequest true "gymId, bookingType, date; optional timeSlot, notes"
// @Success 201 {object} View
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "gymId, bookingType, and date are required")
		case errors.Is(err, ErrGymNotFound):
			response.NotFound(c, "Gym not found")
		default:
			h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create booking")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.svc.UpdateStatus(c.Request.Context(), userID, bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Not authorized")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid status")
		default:
			h.logger.Error().Err(err).Int64("booking_id", bookingID).Msg("failed to update booking")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Export streams the caller's bookings as an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to load bookings for export")
		response.Internal(c)
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, items); err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to render bookings export")
		response.Internal(c)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
