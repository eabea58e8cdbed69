package dto

type CreateCarrierRequest struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Contact string `json:"contact" validate:"required"`
	State   string `json:"state"   validate:"omitempty,oneof=available 'on trip' 'not available'"`
}

type CarrierResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
}

type CarrierFilter struct {
	State string `form:"state" validate:"omitempty,oneof=available 'on trip' 'not available'"`
}
