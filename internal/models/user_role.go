package models

import "time"

// Seeded role IDs. The three baseline roles are fixtures, not user data.
const (
	RoleIDAdmin        uint = 1
	RoleIDVeterinarian uint = 2
	RoleIDPetOwner     uint = 3
)

type UserRole struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
