package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrivoice/internal/service"
)

// AlertHandler handles the combined weather and advisory endpoint.
type AlertHandler struct {
	alertService service.AlertService
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(alertService service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// AlerteMeteo godoc
// @Summary Weather forecast with seasonal crop advice
// @Description Always answers 200; a provider outage degrades to an empty
// @Description forecast instead of an error.
// @Tags meteo
// @Produce json
// @Param region query string false "Region (defaults to Antananarivo)"
// @Param culture query string false "Crop name"
// @Success 200 {object} service.Alert
// @Router /alerte-meteo [get]
func (h *AlertHandler) AlerteMeteo(c echo.Context) error {
	alert := h.alertService.GetAlert(c.Request().Context(), c.QueryParam("region"), c.QueryParam("culture"))
	return c.JSON(http.StatusOK, alert)
}
