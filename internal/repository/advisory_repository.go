package repository

import (
	"context"

	"gorm.io/gorm"

	"agrivoice/internal/model"
)

// AdvisoryRepository defines read access to the static crop calendar.
type AdvisoryRepository interface {
	// FindAdvice returns calendar entries for a crop whose inclusive month
	// range contains the given month, in table order. The naive
	// mois_debut <= m <= mois_fin check does not match ranges wrapping over
	// the new year.
	FindAdvice(ctx context.Context, crop string, month int) ([]model.AdvisoryEntry, error)
	Seed(ctx context.Context, entries []model.AdvisoryEntry) (int, error)
}

type advisoryRepository struct {
	db *gorm.DB
}

// NewAdvisoryRepository creates a new advisory repository.
func NewAdvisoryRepository(db *gorm.DB) AdvisoryRepository {
	return &advisoryRepository{db: db}
}

// FindAdvice selects matching calendar entries in table order.
func (r *advisoryRepository) FindAdvice(ctx context.Context, crop string, month int) ([]model.AdvisoryEntry, error) {
	var entries []model.AdvisoryEntry
	err := r.db.WithContext(ctx).
		Where("nom_culture = ? AND mois_debut <= ? AND mois_fin >= ?", crop, month, month).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Seed inserts calendar entries that are not present yet, keyed by crop and
// month range.
func (r *advisoryRepository) Seed(ctx context.Context, entries []model.AdvisoryEntry) (int, error) {
	created := 0
	for _, entry := range entries {
		var existing model.AdvisoryEntry
		err := r.db.WithContext(ctx).
			Where("nom_culture = ? AND mois_debut = ? AND mois_fin = ?",
				entry.NomCulture, entry.MoisDebut, entry.MoisFin).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
