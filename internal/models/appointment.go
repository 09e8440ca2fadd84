package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	VeterinarianID uint         `gorm:"not null" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian,omitempty"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	DurationMin     int       `gorm:"default:30" json:"duration_min"`

	AppointmentType string `gorm:"size:50;not null" json:"appointment_type"`
	Status          string `gorm:"size:20;default:'Scheduled'" json:"status"`

	Notes          string `gorm:"size:255" json:"notes"`
	ReasonForVisit string `gorm:"size:255" json:"reason_for_visit"`

	EstimatedCost *float64 `gorm:"type:decimal(10,2)" json:"estimated_cost"`
	ActualCost    *float64 `gorm:"type:decimal(10,2)" json:"actual_cost"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
