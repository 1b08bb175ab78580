package model

import "time"

// ConsultationStatus represents the lifecycle state of a consultation.
type ConsultationStatus string

const (
	// ConsultationStatusPending marks a question waiting for an expert.
	ConsultationStatusPending ConsultationStatus = "en_attente"
	// ConsultationStatusAnswered marks a question an expert has answered.
	ConsultationStatusAnswered ConsultationStatus = "repondu"
)

// Consultation is a farmer's audio question, its lifecycle state and the
// optional expert audio answer.
type Consultation struct {
	ID               uint               `json:"id" gorm:"primaryKey"`
	UserID           uint               `json:"user_id" gorm:"column:user_id;not null;index"`
	AudioQuestionURL string             `json:"audio_question_url" gorm:"column:audio_question_url;size:512;not null"`
	AudioResponseURL *string            `json:"audio_response_url" gorm:"column:audio_response_url;size:512"`
	Status           ConsultationStatus `json:"status" gorm:"column:status;type:varchar(20);not null;default:'en_attente';index"`
	DateDemande      time.Time          `json:"date_demande" gorm:"column:date_demande;not null;index"`

	// Back-reference only; the consultation does not own the user record.
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName keeps the table name of the original schema.
func (Consultation) TableName() string { return "consultations" }

// PendingConsultation is a pending consultation joined with the requester's
// name, as served to experts.
type PendingConsultation struct {
	Consultation
	Nom string `json:"nom" gorm:"column:nom"`
}
