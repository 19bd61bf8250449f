package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`

	StateSlots []*StateSlot `gorm:"foreignKey:UserID"`
	Timestamp
}
