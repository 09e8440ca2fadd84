package models

import "time"

type MedicalConsultation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MedicalRecordID uint          `gorm:"not null" json:"medical_record_id"`
	MedicalRecord   MedicalRecord `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"medical_record,omitempty"`

	VeterinarianID uint         `gorm:"not null" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian,omitempty"`

	ConsultationDate time.Time `json:"consultation_date"`

	Reason    string `gorm:"size:255" json:"reason"`
	Diagnosis string `gorm:"size:255" json:"diagnosis"`
	Treatment string `gorm:"type:text" json:"treatment"`
	Notes     string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
