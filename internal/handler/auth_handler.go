package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/service"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// InscriptionRequest represents a registration request.
type InscriptionRequest struct {
	Nom       string `json:"nom" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Region    string `json:"region"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Telephone string `json:"telephone" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a region update request.
type UpdateProfileRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Region string `json:"region" validate:"required"`
}

// Inscription godoc
// @Summary Register a new farmer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body InscriptionRequest true "Registration data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /inscription [post]
func (h *AuthHandler) Inscription(c echo.Context) error {
	var req InscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	if _, err := h.userService.Register(c.Request().Context(), req.Nom, req.Telephone, req.Password, req.Region); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Tafiditra soa aman-tsara ny kaontinao!",
	})
}

// Login godoc
// @Summary Authenticate by phone and PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	user, err := h.userService.Login(c.Request().Context(), req.Telephone, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Tafiditra ianao!",
		"user":    user,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's region
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update-profile [post]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	if err := h.userService.UpdateRegion(c.Request().Context(), req.UserID, req.Region); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Profil mis à jour",
	})
}
