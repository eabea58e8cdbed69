package service

import (
	"context"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/repository"

	"github.com/google/uuid"
)

// CarrierService manages the carrier roster. Availability is set manually by
// staff; assigning a route never flips it.
type CarrierService interface {
	Create(ctx context.Context, caller authz.Caller, req dto.CreateCarrierRequest) (*dto.CarrierResponse, error)
	GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.CarrierResponse, error)
	List(ctx context.Context, caller authz.Caller, filter dto.CarrierFilter) ([]dto.CarrierResponse, error)
	Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.CreateCarrierRequest) (*dto.CarrierResponse, error)
	Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error
}

type carrierService struct {
	repo repository.CarrierRepository
}

func NewCarrierService(repo repository.CarrierRepository) CarrierService {
	return &carrierService{repo: repo}
}

func (s *carrierService) Create(ctx context.Context, caller authz.Caller, req dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if err := authz.Require(caller, authz.EntityCarrier, authz.ActionCreate); err != nil {
		return nil, err
	}
	state := req.State
	if state == "" {
		state = model.CarrierAvailable
	}
	if !model.ValidCarrierState(state) {
		return nil, domerr.Validation("estado de transportista invalido")
	}
	carrier := &model.Carrier{Name: req.Name, Contact: req.Contact, State: state}
	if err := s.repo.Create(ctx, carrier); err != nil {
		return nil, err
	}
	resp := carrierToResponse(carrier)
	return &resp, nil
}

func (s *carrierService) GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.CarrierResponse, error) {
	if err := authz.Require(caller, authz.EntityCarrier, authz.ActionRead); err != nil {
		return nil, err
	}
	carrier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("transportista no encontrado")
	}
	resp := carrierToResponse(carrier)
	return &resp, nil
}

func (s *carrierService) List(ctx context.Context, caller authz.Caller, filter dto.CarrierFilter) ([]dto.CarrierResponse, error) {
	if err := authz.Require(caller, authz.EntityCarrier, authz.ActionRead); err != nil {
		return nil, err
	}
	carriers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CarrierResponse, len(carriers))
	for i := range carriers {
		resp[i] = carrierToResponse(&carriers[i])
	}
	return resp, nil
}

func (s *carrierService) Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if err := authz.Require(caller, authz.EntityCarrier, authz.ActionUpdate); err != nil {
		return nil, err
	}
	carrier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("transportista no encontrado")
	}
	if req.State != "" && !model.ValidCarrierState(req.State) {
		return nil, domerr.Validation("estado de transportista invalido")
	}
	if req.Name != "" {
		carrier.Name = req.Name
	}
	if req.Contact != "" {
		carrier.Contact = req.Contact
	}
	if req.State != "" {
		carrier.State = req.State
	}
	if err := s.repo.Update(ctx, carrier); err != nil {
		return nil, err
	}
	resp := carrierToResponse(carrier)
	return &resp, nil
}

func (s *carrierService) Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error {
	if err := authz.Require(caller, authz.EntityCarrier, authz.ActionDelete); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domerr.NotFound("transportista no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func carrierToResponse(c *model.Carrier) dto.CarrierResponse {
	return dto.CarrierResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Contact:   c.Contact,
		State:     c.State,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
