package model

import "time"

// User represents a farmer or expert account in the directory.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nom       string    `json:"nom" gorm:"column:nom;size:255;not null"`
	Telephone string    `json:"telephone" gorm:"column:telephone;uniqueIndex;size:30;not null"`
	Pin       string    `json:"-" gorm:"column:pin;size:255;not null"` // Never expose in JSON
	Region    string    `json:"region" gorm:"column:region;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name of the original schema.
func (User) TableName() string { return "users" }
