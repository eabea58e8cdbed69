package service

import (
	"context"
	"errors"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CustomerService manages the customer roster. ListActive is the only
// candidate source for order creation and document assignment.
type CustomerService interface {
	Create(ctx context.Context, caller authz.Caller, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, caller authz.Caller, filter dto.CustomerFilter) ([]dto.CustomerResponse, error)
	ListActive(ctx context.Context, caller authz.Caller) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, caller authz.Caller, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionCreate); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.CustomerActive
	}
	if !model.ValidCustomerStatus(status) {
		return nil, domerr.Validation("estado de cliente invalido")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	customer := &model.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Status:       status,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domerr.Conflict("ya existe un cliente con ese email")
		}
		return nil, err
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.CustomerResponse, error) {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionRead); err != nil {
		return nil, err
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("cliente no encontrado")
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *customerService) List(ctx context.Context, caller authz.Caller, filter dto.CustomerFilter) ([]dto.CustomerResponse, error) {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionRead); err != nil {
		return nil, err
	}
	customers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return customersToResponses(customers), nil
}

func (s *customerService) ListActive(ctx context.Context, caller authz.Caller) ([]dto.CustomerResponse, error) {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionRead); err != nil {
		return nil, err
	}
	customers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return customersToResponses(customers), nil
}

// Update applies partial changes; an absent password leaves the stored
// credential untouched, never cleared.
func (s *customerService) Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionUpdate); err != nil {
		return nil, err
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("cliente no encontrado")
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Status != "" {
		if !model.ValidCustomerStatus(req.Status) {
			return nil, domerr.Validation("estado de cliente invalido")
		}
		customer.Status = req.Status
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domerr.Conflict("ya existe un cliente con ese email")
		}
		return nil, err
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *customerService) Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error {
	if err := authz.Require(caller, authz.EntityCustomer, authz.ActionDelete); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domerr.NotFound("cliente no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func customerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func customersToResponses(customers []model.Customer) []dto.CustomerResponse {
	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = customerToResponse(&customers[i])
	}
	return resp
}
