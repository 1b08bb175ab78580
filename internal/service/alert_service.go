package service

import (
	"context"
	"time"

	"agrivoice/internal/model"
	"agrivoice/internal/repository"
	"agrivoice/internal/weather"
)

const (
	// FallbackAdvice is returned when no calendar entry matches.
	FallbackAdvice = "Tandremo ny voly."
	// DegradedMessage replaces the advisory when the forecast provider is
	// unreachable.
	DegradedMessage = "Meteo tsy azo"
)

// Alert combines the short-term forecast with the seasonal crop advice.
type Alert struct {
	Previsions []weather.ForecastEntry `json:"previsions"`
	Message    string                  `json:"message"`
	Niveau     string                  `json:"niveau"`
}

// Forecaster is the weather dependency of the alert service.
type Forecaster interface {
	Forecast(ctx context.Context, region string) weather.Bundle
}

// AlertService builds the weather+advisory bundle for a region and crop.
type AlertService interface {
	GetAlert(ctx context.Context, region, culture string) Alert
}

type alertService struct {
	advisories repository.AdvisoryRepository
	forecaster Forecaster
	now        func() time.Time
}

// NewAlertService creates a new alert service.
func NewAlertService(advisories repository.AdvisoryRepository, forecaster Forecaster) AlertService {
	return &alertService{
		advisories: advisories,
		forecaster: forecaster,
		now:        time.Now,
	}
}

// GetAlert fetches the forecast and looks up crop advice for the current
// month. It never fails: a provider outage yields the degraded message and
// a missing calendar entry yields the fallback advice.
func (s *alertService) GetAlert(ctx context.Context, region, culture string) Alert {
	bundle := s.forecaster.Forecast(ctx, region)
	if bundle.Degraded {
		return Alert{
			Previsions: []weather.ForecastEntry{},
			Message:    DegradedMessage,
			Niveau:     weather.LevelSuccess,
		}
	}

	return Alert{
		Previsions: bundle.Previsions,
		Message:    s.findAdvice(ctx, culture),
		Niveau:     bundle.Niveau,
	}
}

// findAdvice returns the first calendar entry matching the crop and current
// month, degrading to the fallback advice on no match or lookup failure.
func (s *alertService) findAdvice(ctx context.Context, culture string) string {
	month := int(s.now().Month())
	entries, err := s.advisories.FindAdvice(ctx, culture, month)
	if err != nil || len(entries) == 0 {
		return FallbackAdvice
	}
	return entries[0].ConseilMeteoPluie
}

// SeedEntries is the starter crop calendar loaded by cmd/seed.
func SeedEntries() []model.AdvisoryEntry {
	return []model.AdvisoryEntry{
		{NomCulture: "Riz", MoisDebut: 1, MoisFin: 4, ConseilMeteoPluie: "Arovy amin'ny rano be ny tanimbary; hamarino ny lakandrano."},
		{NomCulture: "Riz", MoisDebut: 10, MoisFin: 12, ConseilMeteoPluie: "Fotoana fambolena: manomana ny tanimbary alohan'ny orana."},
		{NomCulture: "Manioc", MoisDebut: 9, MoisFin: 12, ConseilMeteoPluie: "Ambolena amin'ny fiandohan'ny orana ny mangahazo."},
		{NomCulture: "Mais", MoisDebut: 10, MoisFin: 1, ConseilMeteoPluie: "Atomboka amin'ny orana voalohany ny fambolena katsaka."},
		{NomCulture: "Haricot", MoisDebut: 3, MoisFin: 6, ConseilMeteoPluie: "Aza avela ho lena loatra ny tsaramaso rehefa mamony."},
		{NomCulture: "Vanille", MoisDebut: 6, MoisFin: 9, ConseilMeteoPluie: "Fotoanan'ny fiotazana: ahazo ny lavanila amin'ny toerana maina."},
	}
}
