package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer status values. Inactive customers are excluded from every
// order-creation and document-assignment candidate list.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Customer is a client of the logistics operation. Customers hold their own
// credential hash for the tracking portal; the console only manages it.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        *string
	PasswordHash string `gorm:"not null"`
	Status       string `gorm:"type:varchar(10);not null;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidCustomerStatus(s string) bool {
	return s == CustomerActive || s == CustomerInactive
}
