package service

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/media"
	"agrivoice/internal/model"
	"agrivoice/internal/repository"
)

// ConsultationService drives the consultation lifecycle: a question enters
// pending, an expert answer moves it to answered, and it never goes back.
type ConsultationService interface {
	SubmitQuestion(ctx context.Context, userID uint, originalName string, audio io.Reader) (*model.Consultation, error)
	ListPending(ctx context.Context) ([]model.PendingConsultation, error)
	SubmitAnswer(ctx context.Context, consultationID uint, originalName string, audio io.Reader) error
	ListHistory(ctx context.Context, userID uint) ([]model.Consultation, error)
}

type consultationService struct {
	repo  repository.ConsultationRepository
	media media.Store
	now   func() time.Time
}

// NewConsultationService creates a new consultation service.
func NewConsultationService(repo repository.ConsultationRepository, mediaStore media.Store) ConsultationService {
	return &consultationService{
		repo:  repo,
		media: mediaStore,
		now:   time.Now,
	}
}

// SubmitQuestion stores the question audio and creates a pending
// consultation for the user.
func (s *consultationService) SubmitQuestion(ctx context.Context, userID uint, originalName string, audio io.Reader) (*model.Consultation, error) {
	if userID == 0 || audio == nil {
		return nil, apperrors.ErrMissingField
	}

	audioURL, err := s.media.Save(ctx, originalName, audio)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	consultation := &model.Consultation{
		UserID:           userID,
		AudioQuestionURL: audioURL,
		Status:           model.ConsultationStatusPending,
		DateDemande:      s.now(),
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, fmt.Errorf("create consultation: %w", err)
	}
	return consultation, nil
}

// ListPending returns the expert queue, oldest question first.
func (s *consultationService) ListPending(ctx context.Context) ([]model.PendingConsultation, error) {
	return s.repo.ListPending(ctx)
}

// SubmitAnswer stores the answer audio and marks the consultation answered.
// There is no guard on the previous status: answering an already-answered
// consultation overwrites the earlier answer, and an unknown id updates
// nothing without error.
func (s *consultationService) SubmitAnswer(ctx context.Context, consultationID uint, originalName string, audio io.Reader) error {
	if consultationID == 0 || audio == nil {
		return apperrors.ErrMissingField
	}

	audioURL, err := s.media.Save(ctx, originalName, audio)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	if _, err := s.repo.SetAnswer(ctx, consultationID, audioURL); err != nil {
		return fmt.Errorf("set answer: %w", err)
	}
	return nil
}

// ListHistory returns a user's consultations, most recent first.
func (s *consultationService) ListHistory(ctx context.Context, userID uint) ([]model.Consultation, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingField
	}
	return s.repo.ListByUser(ctx, userID)
}
