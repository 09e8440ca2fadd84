package models

import "time"

// Prescription rows are owned by their consultation and removed with it.
type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConsultationID uint                `gorm:"not null" json:"consultation_id"`
	Consultation   MedicalConsultation `gorm:"foreignKey:ConsultationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MedicationID uint       `gorm:"not null" json:"medication_id"`
	Medication   Medication `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"medication,omitempty"`

	Dosage       string `gorm:"size:100" json:"dosage"`
	Frequency    string `gorm:"size:100" json:"frequency"`
	Duration     string `gorm:"size:100" json:"duration"`
	Instructions string `gorm:"type:text" json:"instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
