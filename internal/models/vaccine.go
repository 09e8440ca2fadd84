package models

import "time"

type Vaccine struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Manufacturer string `gorm:"size:100" json:"manufacturer"`
	Description  string `gorm:"size:255" json:"description"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
