package models

import "time"

type Medication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedDate time.Time `json:"created_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}
