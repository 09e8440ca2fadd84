package models

import "time"

type AdminStaff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	User   AppUser `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Position string `gorm:"size:100" json:"position"`
	Notes    string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
