package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/service"
)

// ConsultationHandler handles question uploads, the expert queue and
// consultation history.
type ConsultationHandler struct {
	consultationService service.ConsultationService
}

// NewConsultationHandler creates a new consultation handler.
func NewConsultationHandler(consultationService service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// UploadAudio godoc
// @Summary Submit an audio question
// @Tags consultations
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Question audio"
// @Param user_id formData integer true "Requesting farmer id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload-audio [post]
func (h *ConsultationHandler) UploadAudio(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Fichier manquant"})
	}

	userID, err := strconv.ParseUint(c.FormValue("user_id"), 10, 32)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "ID manquant"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: err.Error()})
	}
	defer src.Close()

	if _, err := h.consultationService.SubmitQuestion(c.Request().Context(), uint(userID), file.Filename, src); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Voaray ny feonao!",
	})
}

// Historique godoc
// @Summary List a farmer's consultations, most recent first
// @Tags consultations
// @Produce json
// @Param user_id query integer true "Farmer id"
// @Success 200 {array} model.Consultation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /historique [get]
func (h *ConsultationHandler) Historique(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "ID manquant"})
	}

	consultations, err := h.consultationService.ListHistory(c.Request().Context(), uint(userID))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, consultations)
}

// ExpertQuestions godoc
// @Summary List pending questions for experts, oldest first
// @Tags experts
// @Produce json
// @Success 200 {array} model.PendingConsultation
// @Failure 500 {object} errors.ErrorResponse
// @Router /expert/questions [get]
func (h *ConsultationHandler) ExpertQuestions(c echo.Context) error {
	pending, err := h.consultationService.ListPending(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pending)
}

// ExpertReponse godoc
// @Summary Submit an expert audio answer
// @Tags experts
// @Accept multipart/form-data
// @Produce json
// @Param audio_reponse formData file true "Answer audio"
// @Param consultation_id formData integer true "Consultation id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expert-reponse [post]
func (h *ConsultationHandler) ExpertReponse(c echo.Context) error {
	file, err := c.FormFile("audio_reponse")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Fichier manquant"})
	}

	consultationID, err := strconv.ParseUint(c.FormValue("consultation_id"), 10, 32)
	if err != nil || consultationID == 0 {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "ID manquant"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: err.Error()})
	}
	defer src.Close()

	if err := h.consultationService.SubmitAnswer(c.Request().Context(), uint(consultationID), file.Filename, src); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Réponse enregistrée",
	})
}
