package models

import "time"

// VaccinationHistory is an append-mostly ledger: pet, vaccine and administering
// veterinarian all restrict-on-delete so a dose never loses attribution.
type VaccinationHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	VaccineID uint    `gorm:"not null" json:"vaccine_id"`
	Vaccine   Vaccine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"vaccine,omitempty"`

	VeterinarianID uint         `gorm:"not null" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian,omitempty"`

	VaccinationDate time.Time  `json:"vaccination_date"`
	BatchNumber     string     `gorm:"size:50" json:"batch_number"`
	ExpirationDate  *time.Time `json:"expiration_date"`

	// Advisory only; nothing schedules reminders from it.
	NextDueDate *time.Time `json:"next_due_date"`

	Reactions string `gorm:"type:text" json:"reactions"`

	CreatedAt time.Time `json:"created_at"`
}

func (VaccinationHistory) TableName() string {
	return "vaccination_history"
}
