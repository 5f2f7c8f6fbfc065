package auth

import (
	"errors"
	"net/http"

	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	logger  *zerolog.Logger
}

func NewHandler(service *Service, logger *zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Signup godoc
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "name, email, password"
// @Success 201 {object} SignupResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	u, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Name, email, and password are required")
		case errors.Is(err, ErrPasswordTooShort):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Password must be at least 8 characters")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, response.CodeConflict, "An account with this email already exists")
		default:
			h.logger.Error().Err(err).Msg("signup failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create account")
		}
		return
	}

	response.Success(c, http.StatusCreated, SignupResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}

// Login godoc
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "email, password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Email and password are required")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid email or password")
		default:
			h.logger.Error().Err(err).Msg("login failed")
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, tokens)
}
