package models

import "time"

// Record statuses. "Active" is the default for new records; "Archived" records
// are kept for history but closed to new consultations at the UI level.
const (
	RecordStatusActive   = "Active"
	RecordStatusArchived = "Archived"
)

type MedicalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	RecordNumber string `gorm:"size:50;uniqueIndex;not null" json:"record_number"`

	CreationDate time.Time `json:"creation_date"`
	GeneralNotes string    `gorm:"type:text" json:"general_notes"`
	Status       string    `gorm:"size:20;default:'Active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
