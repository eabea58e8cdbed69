package model

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle states. The lattice is:
//
//	pending ──┬──> in_transit ──┬──> delivered
//	          │                 │
//	          └──> cancelled <──┘
//
// delivered and cancelled are terminal.
const (
	OrderPending   = "pending"
	OrderInTransit = "in_transit"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order is a customer shipment request. tracking_code and customer_id are
// write-once; orders are never hard-deleted (cancellation is a state).
type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingCode string    `gorm:"uniqueIndex;not null"`
	Description  string    `gorm:"not null"`
	State        string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer *Customer    `gorm:"foreignKey:CustomerID"`
	Events   []OrderEvent `gorm:"foreignKey:OrderID"`
}

func ValidOrderState(s string) bool {
	switch s {
	case OrderPending, OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func Terminal(s string) bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition reports whether the lattice allows moving from -> to.
// Self-transitions are not transitions and are rejected.
func CanTransition(from, to string) bool {
	switch from {
	case OrderPending:
		return to == OrderInTransit || to == OrderCancelled
	case OrderInTransit:
		return to == OrderDelivered || to == OrderCancelled
	}
	return false
}

// OrderEvent is an append-only milestone entry in an order's status history.
// Seq is server-assigned per order inside the append transaction; rows are
// never mutated or deleted and ordering is always by Seq, never by Date.
type OrderEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_events_order_seq,priority:1"`
	Seq       int       `gorm:"not null;uniqueIndex:idx_order_events_order_seq,priority:2"`
	EventType string    `gorm:"not null"`
	Note      string
	Date      time.Time `gorm:"not null"`
}

// Milestone labels offered by the console, in the order they appear in the
// event form. The labels are user-facing and stored verbatim.
var EventTypes = []string{
	"Alistando pedido",
	"Se despacho el pedido",
	"En transito",
	"En transito con novedad",
	"El vehículo llega a la ciudad de destino",
	"En reparto",
	"En reparto con novedad",
	"Entregado",
}

func ValidEventType(t string) bool {
	for _, e := range EventTypes {
		if e == t {
			return true
		}
	}
	return false
}
