package dto

type CreateOrderRequest struct {
	CustomerID   string `json:"customer_id"   validate:"required,uuid"`
	TrackingCode string `json:"tracking_code" validate:"required,min=3"`
	Description  string `json:"description"   validate:"required"`
}

// UpdateOrderRequest: only description and state are mutable. tracking_code
// and customer_id are bound on purpose so that an attempt to send them is
// detected and rejected as an immutable-field error instead of silently ignored.
type UpdateOrderRequest struct {
	Description *string `json:"description"`
	State       *string `json:"state"`

	TrackingCode *string `json:"tracking_code"`
	CustomerID   *string `json:"customer_id"`
}

type AppendEventRequest struct {
	EventType string `json:"event_type" validate:"required"`
	Note      string `json:"note"`
}

type OrderResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	TrackingCode string `json:"tracking_code"`
	Description  string `json:"description"`
	State        string `json:"state"`
	CreatedAt    string `json:"created_at"`
}

type OrderEventResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Seq       int    `json:"seq"`
	EventType string `json:"event_type"`
	Note      string `json:"note"`
	Date      string `json:"date"`
}

// OrderFilter moves the console's client-side search to query-time
// parameters: state, customer and a free-text match on tracking_code or
// description.
type OrderFilter struct {
	State      string `form:"state"       validate:"omitempty,oneof=pending in_transit delivered cancelled"`
	CustomerID string `form:"customer_id" validate:"omitempty,uuid"`
	Search     string `form:"q"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
