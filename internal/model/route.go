package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Route is a single carrier-bound shipping leg attached to exactly one order.
// OrderID, CarrierID, SourceAddress and DepartureDate are write-once after
// creation. Cost is role-restricted (see authz.FieldRouteCost). A route has
// no stored state of its own: the state presented to the console is derived
// from the owning order.
type Route struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID               uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierID             uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceAddress         string    `gorm:"not null"`
	DestinationAddress    string    `gorm:"not null"`
	DepartureDate         time.Time `gorm:"not null"`
	EstimatedDeliveryDate time.Time `gorm:"not null"`
	Cost                  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Comment               string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Order   *Order   `gorm:"foreignKey:OrderID"`
	Carrier *Carrier `gorm:"foreignKey:CarrierID"`
}
