package dto

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,min=2"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"     validate:"required,oneof=admin logistica"`
	Password string  `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest: empty password means "unchanged", never cleared.
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"     validate:"omitempty,oneof=admin logistica"`
	Password string  `json:"password" validate:"omitempty,min=6"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
}
