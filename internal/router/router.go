package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"agrivoice/internal/config"
	"agrivoice/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	consultationHandler *handler.ConsultationHandler,
	alertHandler *handler.AlertHandler,
	mediaHandler *handler.MediaHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// The mobile client calls through tunnels with extra headers.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "ngrok-skip-browser-warning"},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		mode := "Local"
		if cfg.Production() {
			mode = "Production (Railway)"
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "success",
			"message": "Bienvenue sur l'API Tantsaha ! Le serveur est opérationnel.",
			"mode":    mode,
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/uploads/:name", mediaHandler.Serve)

	api := e.Group("/api")

	api.POST("/inscription", authHandler.Inscription)
	api.POST("/login", authHandler.Login)
	api.POST("/update-profile", authHandler.UpdateProfile)

	api.GET("/historique", consultationHandler.Historique)
	api.POST("/upload-audio", consultationHandler.UploadAudio)
	api.GET("/expert/questions", consultationHandler.ExpertQuestions)
	api.POST("/expert-reponse", consultationHandler.ExpertReponse)

	api.GET("/alerte-meteo", alertHandler.AlerteMeteo)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
