package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRouteRequest struct {
	OrderID               string           `json:"order_id"                validate:"required,uuid"`
	CarrierID             string           `json:"carrier_id"              validate:"required,uuid"`
	SourceAddress         string           `json:"source_address"          validate:"required"`
	DestinationAddress    string           `json:"destination_address"     validate:"required"`
	DepartureDate         time.Time        `json:"departure_date"          validate:"required"`
	EstimatedDeliveryDate time.Time        `json:"estimated_delivery_date" validate:"required"`
	Cost                  *decimal.Decimal `json:"cost"`
	Comment               string           `json:"comment"`
}

// UpdateRouteRequest: editable set is destination_address,
// estimated_delivery_date, cost and comment. The four provenance fields are
// bound so an attempt to send them fails as an immutable-field error.
type UpdateRouteRequest struct {
	DestinationAddress    *string          `json:"destination_address"`
	EstimatedDeliveryDate *time.Time       `json:"estimated_delivery_date"`
	Cost                  *decimal.Decimal `json:"cost"`
	Comment               *string          `json:"comment"`

	OrderID       *string    `json:"order_id"`
	CarrierID     *string    `json:"carrier_id"`
	SourceAddress *string    `json:"source_address"`
	DepartureDate *time.Time `json:"departure_date"`
}

// RouteResponse.State is derived from the owning order; Cost is nil for any
// caller whose role may not view it, never a zeroed placeholder.
type RouteResponse struct {
	ID                    string           `json:"id"`
	OrderID               string           `json:"order_id"`
	CarrierID             string           `json:"carrier_id"`
	SourceAddress         string           `json:"source_address"`
	DestinationAddress    string           `json:"destination_address"`
	DepartureDate         string           `json:"departure_date"`
	EstimatedDeliveryDate string           `json:"estimated_delivery_date"`
	Cost                  *decimal.Decimal `json:"cost"`
	Comment               string           `json:"comment"`
	State                 string           `json:"state"`
	CreatedAt             string           `json:"created_at"`
}

type RouteDetailResponse struct {
	RouteResponse
	CarrierName    string `json:"carrier_name"`
	CarrierContact string `json:"carrier_contact"`
	TrackingCode   string `json:"tracking_code"`
}

type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type RouteFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
