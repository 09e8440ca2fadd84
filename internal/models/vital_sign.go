package models

import "time"

// VitalSign rows are owned by their consultation and removed with it.
type VitalSign struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConsultationID uint                `gorm:"not null" json:"consultation_id"`
	Consultation   MedicalConsultation `gorm:"foreignKey:ConsultationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TemperatureC    float64 `json:"temperature_c"`
	HeartRate       int     `json:"heart_rate"`
	RespiratoryRate int     `json:"respiratory_rate"`
	WeightKg        float64 `json:"weight_kg"`

	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}
