package repository

import (
	"context"

	"gorm.io/gorm"

	"agrivoice/internal/model"
)

// ConsultationRepository defines consultation persistence operations.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *model.Consultation) error
	FindByID(ctx context.Context, id uint) (*model.Consultation, error)
	// ListPending returns pending consultations joined with the requester's
	// name, oldest first.
	ListPending(ctx context.Context) ([]model.PendingConsultation, error)
	// ListByUser returns all consultations of a user, most recent first.
	ListByUser(ctx context.Context, userID uint) ([]model.Consultation, error)
	// SetAnswer records the expert response and marks the consultation
	// answered. It returns the number of rows affected; an unknown id
	// affects zero rows and is not an error.
	SetAnswer(ctx context.Context, id uint, responseURL string) (int64, error)
}

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new consultation repository.
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

// Create creates a new consultation record.
func (r *consultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

// FindByID finds a consultation by ID.
func (r *consultationRepository) FindByID(ctx context.Context, id uint) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&consultation).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

// ListPending lists pending consultations joined with users, oldest first so
// experts work the queue first-come-first-served.
func (r *consultationRepository) ListPending(ctx context.Context) ([]model.PendingConsultation, error) {
	var pending []model.PendingConsultation
	err := r.db.WithContext(ctx).
		Table("consultations").
		Select("consultations.*, users.nom").
		Joins("JOIN users ON users.id = consultations.user_id").
		Where("consultations.status = ?", model.ConsultationStatusPending).
		Order("consultations.date_demande ASC").
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// ListByUser lists a user's consultations, most recent first.
func (r *consultationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Consultation, error) {
	var consultations []model.Consultation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_demande DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// SetAnswer sets the response URL and answered status unconditionally; a
// second answer on an already-answered record overwrites the first.
func (r *consultationRepository) SetAnswer(ctx context.Context, id uint, responseURL string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Consultation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"audio_response_url": responseURL,
			"status":             model.ConsultationStatusAnswered,
		})
	return result.RowsAffected, result.Error
}
