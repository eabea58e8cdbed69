package dto

type CreateCustomerRequest struct {
	Name     string  `json:"name"     validate:"required,min=2"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required,min=6"`
	Status   string  `json:"status"   validate:"omitempty,oneof=active inactive"`
}

// UpdateCustomerRequest: empty password means "unchanged", never cleared.
type UpdateCustomerRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"omitempty,min=6"`
	Status   string  `json:"status"   validate:"omitempty,oneof=active inactive"`
}

type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type CustomerFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search string `form:"q"`
}
