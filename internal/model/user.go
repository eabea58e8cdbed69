package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores console staff accounts with role-based access.
// Role: "admin" | "logistica"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r string) bool {
	return r == "admin" || r == "logistica"
}
