package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint     `gorm:"not null" json:"owner_id"`
	Owner   PetOwner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	SpeciesID uint          `gorm:"not null" json:"species_id"`
	Species   AnimalSpecies `gorm:"foreignKey:SpeciesID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"species,omitempty"`

	BreedID *uint  `json:"breed_id"`
	Breed   *Breed `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"breed,omitempty"`

	Name        string     `gorm:"size:100;not null" json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `gorm:"size:10" json:"gender"`
	Color       string     `gorm:"size:50" json:"color"`
	WeightKg    float64    `json:"weight_kg"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
