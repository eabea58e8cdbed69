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
	"github.com/Italzenergy/AlzConnect-app/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService owns the order lifecycle: creation, field updates under the
// state lattice, and the append-only event history. Appending an event never
// changes Order.State; state and history are independently maintained.
type OrderService interface {
	Create(ctx context.Context, caller authz.Caller, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context, caller authz.Caller, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	AppendEvent(ctx context.Context, caller authz.Caller, orderID uuid.UUID, req dto.AppendEventRequest) (*dto.OrderEventResponse, error)
	ListEvents(ctx context.Context, caller authz.Caller, orderID uuid.UUID) ([]dto.OrderEventResponse, error)
}

type orderService struct {
	repo         repository.OrderRepository
	customerRepo repository.CustomerRepository
	dispatcher   *worker.Dispatcher
}

func NewOrderService(repo repository.OrderRepository, customerRepo repository.CustomerRepository, dispatcher *worker.Dispatcher) OrderService {
	return &orderService{repo: repo, customerRepo: customerRepo, dispatcher: dispatcher}
}

func (s *orderService) Create(ctx context.Context, caller authz.Caller, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionCreate); err != nil {
		return nil, err
	}
	if req.CustomerID == "" || req.TrackingCode == "" || req.Description == "" {
		return nil, domerr.Validation("customer_id, tracking_code y description son obligatorios")
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, domerr.Validation("customer_id invalido")
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, domerr.NotFound("cliente no encontrado")
	}
	if customer.Status != model.CustomerActive {
		return nil, domerr.Validation("el cliente esta inactivo y no puede recibir pedidos")
	}

	order := &model.Order{
		CustomerID:   customerID,
		TrackingCode: req.TrackingCode,
		Description:  req.Description,
		State:        model.OrderPending,
	}
	// The unique index on tracking_code is the authority under concurrency:
	// of two simultaneous creates with the same code exactly one commits.
	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domerr.Conflict("ya existe un pedido con el tracking_code " + req.TrackingCode)
		}
		return nil, err
	}
	order.Customer = customer
	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetByID(ctx context.Context, caller authz.Caller, id uuid.UUID) (*dto.OrderResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionRead); err != nil {
		return nil, err
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("pedido no encontrado")
	}
	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, caller authz.Caller, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionRead); err != nil {
		return nil, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		data[i] = orderToResponse(&orders[i])
	}
	return &dto.OrderListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update mutates description and state only. tracking_code and customer_id
// are write-once: any attempt to send them fails before anything is applied.
func (s *orderService) Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if req.TrackingCode != nil {
		return nil, domerr.ImmutableField("tracking_code")
	}
	if req.CustomerID != nil {
		return nil, domerr.ImmutableField("customer_id")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("pedido no encontrado")
	}

	if req.State != nil && *req.State != order.State {
		if !model.ValidOrderState(*req.State) {
			return nil, domerr.Validation("estado de pedido invalido")
		}
		if !model.CanTransition(order.State, *req.State) {
			return nil, domerr.State("transicion de estado invalida: " + order.State + " -> " + *req.State)
		}
		order.State = *req.State
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, domerr.Validation("description no puede ser vacio")
		}
		order.Description = *req.Description
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	resp := orderToResponse(order)
	return &resp, nil
}

// AppendEvent inserts a milestone into the order history. The sequence and
// timestamp are server-assigned; caller-supplied dates never affect ordering.
// A notification email for the order's customer is enqueued best-effort.
func (s *orderService) AppendEvent(ctx context.Context, caller authz.Caller, orderID uuid.UUID, req dto.AppendEventRequest) (*dto.OrderEventResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if !model.ValidEventType(req.EventType) {
		return nil, domerr.Validation("event_type invalido: " + req.EventType)
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, domerr.NotFound("pedido no encontrado")
	}

	ev, err := s.repo.AppendEvent(ctx, orderID, req.EventType, req.Note)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil && order.Customer != nil {
		_ = s.dispatcher.EnqueueEventNotification(ctx, worker.EventNotificationPayload{
			ToEmail:      order.Customer.Email,
			TrackingCode: order.TrackingCode,
			EventType:    ev.EventType,
			Note:         ev.Note,
		})
	}

	resp := eventToResponse(ev)
	return &resp, nil
}

// ListEvents returns the full history for an order in insertion order.
// Each call re-reads from the persistence boundary, so the sequence is
// restartable and only ever grows between calls.
func (s *orderService) ListEvents(ctx context.Context, caller authz.Caller, orderID uuid.UUID) ([]dto.OrderEventResponse, error) {
	if err := authz.Require(caller, authz.EntityOrder, authz.ActionRead); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, orderID); err != nil {
		return nil, domerr.NotFound("pedido no encontrado")
	}
	events, err := s.repo.ListEvents(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrderEventResponse, len(events))
	for i := range events {
		resp[i] = eventToResponse(&events[i])
	}
	return resp, nil
}

func orderToResponse(o *model.Order) dto.OrderResponse {
	customerName := ""
	if o.Customer != nil {
		customerName = o.Customer.Name
	}
	return dto.OrderResponse{
		ID:           o.ID.String(),
		CustomerID:   o.CustomerID.String(),
		CustomerName: customerName,
		TrackingCode: o.TrackingCode,
		Description:  o.Description,
		State:        o.State,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}

func eventToResponse(ev *model.OrderEvent) dto.OrderEventResponse {
	return dto.OrderEventResponse{
		ID:        ev.ID.String(),
		OrderID:   ev.OrderID.String(),
		Seq:       ev.Seq,
		EventType: ev.EventType,
		Note:      ev.Note,
		Date:      ev.Date.Format(time.RFC3339),
	}
}
