package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/media"
	"agrivoice/internal/model"
)

// MockConsultationRepository is a mock implementation of ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, id uint) (*model.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) ListPending(ctx context.Context) ([]model.PendingConsultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PendingConsultation), args.Error(1)
}

func (m *MockConsultationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Consultation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) SetAnswer(ctx context.Context, id uint, responseURL string) (int64, error) {
	args := m.Called(ctx, id, responseURL)
	return args.Get(0).(int64), args.Error(1)
}

// fakeMediaStore records saves and hands back deterministic URLs.
type fakeMediaStore struct {
	saved []string
	fail  bool
}

func (f *fakeMediaStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	if f.fail {
		return "", errors.New("disk full")
	}
	_, _ = io.Copy(io.Discard, r)
	url := media.PublicPrefix + "/generated" + path.Ext(originalName)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeMediaStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func TestConsultationService_SubmitQuestion(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		audio         io.Reader
		storeFails    bool
		setupMock     func(*MockConsultationRepository)
		expectedError error
	}{
		{
			name:   "creates a pending consultation",
			userID: 7,
			audio:  strings.NewReader("riff"),
			setupMock: func(m *MockConsultationRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Consultation")).Return(nil)
			},
		},
		{
			name:          "missing user id",
			userID:        0,
			audio:         strings.NewReader("riff"),
			setupMock:     func(m *MockConsultationRepository) {},
			expectedError: apperrors.ErrMissingField,
		},
		{
			name:          "missing audio",
			userID:        7,
			audio:         nil,
			setupMock:     func(m *MockConsultationRepository) {},
			expectedError: apperrors.ErrMissingField,
		},
		{
			name:          "storage failure",
			userID:        7,
			audio:         strings.NewReader("riff"),
			storeFails:    true,
			setupMock:     func(m *MockConsultationRepository) {},
			expectedError: apperrors.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockConsultationRepository)
			tt.setupMock(mockRepo)
			store := &fakeMediaStore{fail: tt.storeFails}

			svc := NewConsultationService(mockRepo, store)
			consultation, err := svc.SubmitQuestion(context.Background(), tt.userID, "q1.wav", tt.audio)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, consultation)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, consultation)
				assert.Equal(t, model.ConsultationStatusPending, consultation.Status)
				assert.Equal(t, tt.userID, consultation.UserID)
				assert.True(t, strings.HasSuffix(consultation.AudioQuestionURL, ".wav"))
				assert.Nil(t, consultation.AudioResponseURL)
				assert.False(t, consultation.DateDemande.IsZero())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestConsultationService_SubmitAnswer(t *testing.T) {
	tests := []struct {
		name           string
		consultationID uint
		audio          io.Reader
		setupMock      func(*MockConsultationRepository)
		expectedError  error
	}{
		{
			name:           "marks the consultation answered",
			consultationID: 3,
			audio:          strings.NewReader("riff"),
			setupMock: func(m *MockConsultationRepository) {
				m.On("SetAnswer", mock.Anything, uint(3), mock.AnythingOfType("string")).Return(int64(1), nil)
			},
		},
		{
			name:           "unknown consultation updates nothing without error",
			consultationID: 999,
			audio:          strings.NewReader("riff"),
			setupMock: func(m *MockConsultationRepository) {
				m.On("SetAnswer", mock.Anything, uint(999), mock.AnythingOfType("string")).Return(int64(0), nil)
			},
		},
		{
			name:           "missing consultation id",
			consultationID: 0,
			audio:          strings.NewReader("riff"),
			setupMock:      func(m *MockConsultationRepository) {},
			expectedError:  apperrors.ErrMissingField,
		},
		{
			name:           "missing audio",
			consultationID: 3,
			audio:          nil,
			setupMock:      func(m *MockConsultationRepository) {},
			expectedError:  apperrors.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockConsultationRepository)
			tt.setupMock(mockRepo)

			svc := NewConsultationService(mockRepo, &fakeMediaStore{})
			err := svc.SubmitAnswer(context.Background(), tt.consultationID, "a1.wav", tt.audio)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestConsultationService_ListHistory(t *testing.T) {
	mockRepo := new(MockConsultationRepository)
	history := []model.Consultation{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return(history, nil)

	svc := NewConsultationService(mockRepo, &fakeMediaStore{})

	got, err := svc.ListHistory(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, history, got)

	_, err = svc.ListHistory(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	mockRepo.AssertExpectations(t)
}
