package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agrivoice/internal/auth"
	"agrivoice/internal/handler"
	"agrivoice/internal/media"
	"agrivoice/internal/model"
	"agrivoice/internal/repository"
	"agrivoice/internal/service"
	"agrivoice/internal/weather"
)

type stubForecaster struct {
	bundle weather.Bundle
}

func (s *stubForecaster) Forecast(ctx context.Context, region string) weather.Bundle {
	return s.bundle
}

func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Consultation{}, &model.AdvisoryEntry{}))

	mediaStore, err := media.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	userService := service.NewUserService(repository.NewUserRepository(db), auth.NewPlainCredentialStore())
	consultationService := service.NewConsultationService(repository.NewConsultationRepository(db), mediaStore)
	alertService := service.NewAlertService(repository.NewAdvisoryRepository(db), &stubForecaster{
		bundle: weather.Bundle{Previsions: []weather.ForecastEntry{}, Niveau: weather.LevelSuccess, Degraded: true},
	})

	e := echo.New()
	e.Validator = newValidator()

	api := e.Group("/api")
	authHandler := handler.NewAuthHandler(userService)
	consultationHandler := handler.NewConsultationHandler(consultationService)
	alertHandler := handler.NewAlertHandler(alertService)

	api.POST("/inscription", authHandler.Inscription)
	api.POST("/login", authHandler.Login)
	api.POST("/update-profile", authHandler.UpdateProfile)
	api.GET("/historique", consultationHandler.Historique)
	api.POST("/upload-audio", consultationHandler.UploadAudio)
	api.GET("/expert/questions", consultationHandler.ExpertQuestions)
	api.POST("/expert-reponse", consultationHandler.ExpertReponse)
	api.GET("/alerte-meteo", alertHandler.AlerteMeteo)

	return e, db
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newValidator() echo.Validator {
	return &testValidator{validate: validator.New()}
}

func doJSON(t *testing.T, e *echo.Echo, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doMultipart(t *testing.T, e *echo.Echo, target, fileField, filename string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("riff-data"))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConsultationLifecycleOverHTTP(t *testing.T) {
	e, db := newTestApp(t)

	// Register a farmer and log in.
	rec := doJSON(t, e, http.MethodPost, "/api/inscription", map[string]string{
		"nom": "Rakoto", "telephone": "0341234567", "password": "1234", "region": "Itasy",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Duplicate phone is rejected with 500, matching the original API.
	rec = doJSON(t, e, http.MethodPost, "/api/inscription", map[string]string{
		"nom": "Imposteur", "telephone": "0341234567", "password": "0000", "region": "Itasy",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Efa misy mampiasa io laharana io")

	rec = doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"telephone": "0341234567", "password": "1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var loginResp struct {
		Message string     `json:"message"`
		User    model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	userID := loginResp.User.ID
	require.NotZero(t, userID)

	rec = doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"telephone": "0341234567", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Upload the question audio.
	rec = doMultipart(t, e, "/api/upload-audio", "audio", "q1.wav", map[string]string{
		"user_id": formatID(userID),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Voaray ny feonao!")

	// Missing file yields 400.
	rec = doMultipart(t, e, "/api/upload-audio", "audio", "", map[string]string{
		"user_id": formatID(userID),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The question is in the expert queue, joined with the requester name.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/expert/questions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []model.PendingConsultation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "Rakoto", pending[0].Nom)
	assert.Equal(t, model.ConsultationStatusPending, pending[0].Status)
	assert.True(t, strings.HasSuffix(pending[0].AudioQuestionURL, ".wav"))

	// The expert answers.
	rec = doMultipart(t, e, "/api/expert-reponse", "audio_reponse", "a1.wav", map[string]string{
		"consultation_id": formatID(pending[0].ID),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The queue is empty and history shows the answered record.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/expert/questions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	pending = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	assert.Empty(t, pending)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/historique?user_id="+formatID(userID), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var history []model.Consultation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, model.ConsultationStatusAnswered, history[0].Status)
	require.NotNil(t, history[0].AudioResponseURL)
	assert.True(t, strings.HasSuffix(*history[0].AudioResponseURL, ".wav"))

	// Missing user_id on history yields 400 with the original message.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/historique", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ID manquant")

	// Sanity: exactly one consultation row exists.
	var count int64
	require.NoError(t, db.Model(&model.Consultation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAlerteMeteoDegradesGracefully(t *testing.T) {
	e, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/alerte-meteo?region=Itasy&culture=Riz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var alert service.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alert))
	assert.Empty(t, alert.Previsions)
	assert.Equal(t, service.DegradedMessage, alert.Message)
	assert.Equal(t, weather.LevelSuccess, alert.Niveau)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
