package models

import "time"

// Preferred contact methods accepted on an owner profile.
const (
	ContactMethodEmail = "Email"
	ContactMethodPhone = "Phone"
	ContactMethodSMS   = "SMS"
)

type PetOwner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	User   AppUser `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`

	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	Province   string `gorm:"size:100" json:"province"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	Country    string `gorm:"size:100;default:'Costa Rica'" json:"country"`

	EmergencyContactName  string `gorm:"size:100" json:"emergency_contact_name"`
	EmergencyContactPhone string `gorm:"size:20" json:"emergency_contact_phone"`

	PreferredContactMethod string `gorm:"size:20;default:'Email'" json:"preferred_contact_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
