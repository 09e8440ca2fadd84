package models

import "time"

type AppUser struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255" json:"-"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Active    bool   `gorm:"default:true" json:"active"`

	UserRoleID uint     `gorm:"not null" json:"user_role_id"`
	Role       UserRole `gorm:"foreignKey:UserRoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
