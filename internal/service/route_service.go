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

// RouteService binds a shipping leg to one order and one carrier. Provenance
// fields (order_id, carrier_id, source_address, departure_date) are
// write-once; cost is visible only to roles the gate allows; the presented
// route state is derived from the owning order.
type RouteService interface {
	Create(ctx context.Context, caller authz.Caller, req dto.CreateRouteRequest) (*dto.RouteResponse, error)
	GetDetail(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.RouteDetailResponse, error)
	List(ctx context.Context, caller authz.Caller, filter dto.RouteFilter) (*dto.RouteListResponse, error)
	Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateRouteRequest) (*dto.RouteResponse, error)
}

type routeService struct {
	repo        repository.RouteRepository
	orderRepo   repository.OrderRepository
	carrierRepo repository.CarrierRepository
}

func NewRouteService(repo repository.RouteRepository, orderRepo repository.OrderRepository, carrierRepo repository.CarrierRepository) RouteService {
	return &routeService{repo: repo, orderRepo: orderRepo, carrierRepo: carrierRepo}
}

func (s *routeService) Create(ctx context.Context, caller authz.Caller, req dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	if err := authz.Require(caller, authz.EntityRoute, authz.ActionCreate); err != nil {
		return nil, err
	}
	if req.SourceAddress == "" || req.DestinationAddress == "" ||
		req.DepartureDate.IsZero() || req.EstimatedDeliveryDate.IsZero() {
		return nil, domerr.Validation("source_address, destination_address, departure_date y estimated_delivery_date son obligatorios")
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, domerr.Validation("order_id invalido")
	}
	carrierID, err := uuid.Parse(req.CarrierID)
	if err != nil {
		return nil, domerr.Validation("carrier_id invalido")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, domerr.NotFound("pedido no encontrado")
	}
	if model.Terminal(order.State) {
		return nil, domerr.State("el pedido esta en estado " + order.State + " y no admite rutas")
	}

	carrier, err := s.carrierRepo.FindByID(ctx, carrierID)
	if err != nil {
		return nil, domerr.NotFound("transportista no encontrado")
	}
	if carrier.State != model.CarrierAvailable {
		return nil, domerr.State("el transportista no esta disponible")
	}

	route := &model.Route{
		OrderID:               orderID,
		CarrierID:             carrierID,
		SourceAddress:         req.SourceAddress,
		DestinationAddress:    req.DestinationAddress,
		DepartureDate:         req.DepartureDate,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		Cost:                  req.Cost,
		Comment:               req.Comment,
	}
	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}
	route.Order = order
	resp := routeToResponse(route, caller.Role)
	return &resp, nil
}

func (s *routeService) GetDetail(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.RouteDetailResponse, error) {
	if err := authz.Require(caller, authz.EntityRoute, authz.ActionRead); err != nil {
		return nil, err
	}
	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("ruta no encontrada")
	}
	detail := &dto.RouteDetailResponse{RouteResponse: routeToResponse(route, caller.Role)}
	if route.Carrier != nil {
		detail.CarrierName = route.Carrier.Name
		detail.CarrierContact = route.Carrier.Contact
	}
	if route.Order != nil {
		detail.TrackingCode = route.Order.TrackingCode
	}
	return detail, nil
}

func (s *routeService) List(ctx context.Context, caller authz.Caller, filter dto.RouteFilter) (*dto.RouteListResponse, error) {
	if err := authz.Require(caller, authz.EntityRoute, authz.ActionRead); err != nil {
		return nil, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	routes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RouteResponse, len(routes))
	for i := range routes {
		resp[i] = routeToResponse(&routes[i], caller.Role)
	}
	return &dto.RouteListResponse{Routes: resp, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update edits the mutable subset only. Any provenance field in the request
// fails as immutable; once the owning order is cancelled the route is
// frozen entirely, regardless of role.
func (s *routeService) Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateRouteRequest) (*dto.RouteResponse, error) {
	if err := authz.Require(caller, authz.EntityRoute, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if req.OrderID != nil {
		return nil, domerr.ImmutableField("order_id")
	}
	if req.CarrierID != nil {
		return nil, domerr.ImmutableField("carrier_id")
	}
	if req.SourceAddress != nil {
		return nil, domerr.ImmutableField("source_address")
	}
	if req.DepartureDate != nil {
		return nil, domerr.ImmutableField("departure_date")
	}

	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("ruta no encontrada")
	}
	if route.Order != nil && route.Order.State == model.OrderCancelled {
		return nil, domerr.State("el pedido esta cancelado; la ruta no admite cambios")
	}

	if req.Cost != nil {
		if err := authz.RequireField(caller, authz.EntityRoute, authz.FieldRouteCost); err != nil {
			return nil, err
		}
		route.Cost = req.Cost
	}
	if req.DestinationAddress != nil {
		if *req.DestinationAddress == "" {
			return nil, domerr.Validation("destination_address no puede ser vacio")
		}
		route.DestinationAddress = *req.DestinationAddress
	}
	if req.EstimatedDeliveryDate != nil {
		route.EstimatedDeliveryDate = *req.EstimatedDeliveryDate
	}
	if req.Comment != nil {
		route.Comment = *req.Comment
	}

	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}
	resp := routeToResponse(route, caller.Role)
	return &resp, nil
}

// routeToResponse derives the presented state from the owning order and
// strips cost for roles the gate does not allow. The stripped value is nil,
// never zero, so it cannot be mistaken for a real cost.
func routeToResponse(rt *model.Route, role string) dto.RouteResponse {
	state := model.OrderPending
	if rt.Order != nil {
		state = rt.Order.State
	}
	resp := dto.RouteResponse{
		ID:                    rt.ID.String(),
		OrderID:               rt.OrderID.String(),
		CarrierID:             rt.CarrierID.String(),
		SourceAddress:         rt.SourceAddress,
		DestinationAddress:    rt.DestinationAddress,
		DepartureDate:         rt.DepartureDate.Format(time.RFC3339),
		EstimatedDeliveryDate: rt.EstimatedDeliveryDate.Format(time.RFC3339),
		Comment:               rt.Comment,
		State:                 state,
		CreatedAt:             rt.CreatedAt.Format(time.RFC3339),
	}
	if authz.CanViewField(role, authz.EntityRoute, authz.FieldRouteCost) {
		resp.Cost = rt.Cost
	}
	return resp
}
