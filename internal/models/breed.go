package models

import "time"

type Breed struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SpeciesID uint          `gorm:"not null" json:"species_id"`
	Species   AnimalSpecies `gorm:"foreignKey:SpeciesID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"species,omitempty"`

	// Breed names are not unique; the same name may exist under two species.
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
