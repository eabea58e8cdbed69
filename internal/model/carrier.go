package model

import (
	"time"

	"github.com/google/uuid"
)

// Carrier availability states. Set manually by staff; route assignment
// never transitions a carrier automatically.
const (
	CarrierAvailable    = "available"
	CarrierOnTrip       = "on trip"
	CarrierNotAvailable = "not available"
)

// Carrier is a transport provider. Only an available carrier is a valid
// target for a new route.
type Carrier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Contact   string    `gorm:"not null"`
	State     string    `gorm:"type:varchar(20);not null;default:available"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidCarrierState(s string) bool {
	switch s {
	case CarrierAvailable, CarrierOnTrip, CarrierNotAvailable:
		return true
	}
	return false
}
