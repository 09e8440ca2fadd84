package models

import "time"

type Veterinarian struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	User   AppUser `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	SpecialtyID *uint      `json:"specialty_id"`
	Specialty   *Specialty `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialty,omitempty"`

	YearsOfExperience int    `json:"years_of_experience"`
	Education         string `gorm:"size:255" json:"education"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
