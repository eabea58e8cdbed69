package service_test

import (
	"context"
	"testing"

	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrderSvc() (service.OrderService, *stubOrderRepo, *stubCustomerRepo) {
	orderRepo := newStubOrderRepo()
	customerRepo := newStubCustomerRepo()
	svc := service.NewOrderService(orderRepo, customerRepo, nil)
	return svc, orderRepo, customerRepo
}

func strPtr(s string) *string { return &s }

func TestCreateOrder_StartsPending(t *testing.T) {
	svc, _, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)

	resp, err := svc.Create(context.Background(), logistica, dto.CreateOrderRequest{
		CustomerID:   c.ID.String(),
		TrackingCode: "ALZ-0001",
		Description:  "inversores",
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, resp.State)
	assert.Equal(t, "Energia Sur", resp.CustomerName)
}

func TestCreateOrder_DuplicateTrackingCode(t *testing.T) {
	svc, _, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)

	req := dto.CreateOrderRequest{CustomerID: c.ID.String(), TrackingCode: "ALZ-0001", Description: "x"}
	_, err := svc.Create(context.Background(), admin, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), admin, req)
	assert.True(t, domerr.Is(err, domerr.KindConflict))
}

func TestCreateOrder_InactiveCustomer(t *testing.T) {
	svc, _, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Baja", "baja@example.com", model.CustomerInactive)

	_, err := svc.Create(context.Background(), admin, dto.CreateOrderRequest{
		CustomerID: c.ID.String(), TrackingCode: "ALZ-0002", Description: "x",
	})
	assert.True(t, domerr.Is(err, domerr.KindValidation))
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	svc, _, _ := buildOrderSvc()

	_, err := svc.Create(context.Background(), admin, dto.CreateOrderRequest{
		CustomerID: uuid.NewString(), TrackingCode: "ALZ-0003", Description: "x",
	})
	assert.True(t, domerr.Is(err, domerr.KindNotFound))
}

func TestUpdateOrder_ImmutableFields(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0004", model.OrderPending)

	_, err := svc.Update(context.Background(), admin, o.ID, dto.UpdateOrderRequest{
		TrackingCode: strPtr("OTRO"),
	})
	assert.True(t, domerr.Is(err, domerr.KindImmutableField))

	_, err = svc.Update(context.Background(), admin, o.ID, dto.UpdateOrderRequest{
		CustomerID: strPtr(uuid.NewString()),
	})
	assert.True(t, domerr.Is(err, domerr.KindImmutableField))

	// nothing applied
	assert.Equal(t, "ALZ-0004", orderRepo.orders[o.ID].TrackingCode)
}

func TestUpdateOrder_StateLattice(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.OrderPending, model.OrderInTransit, true},
		{model.OrderPending, model.OrderCancelled, true},
		{model.OrderInTransit, model.OrderDelivered, true},
		{model.OrderInTransit, model.OrderCancelled, true},
		{model.OrderPending, model.OrderDelivered, false},
		{model.OrderDelivered, model.OrderInTransit, false},
		{model.OrderCancelled, model.OrderPending, false},
		{model.OrderDelivered, model.OrderCancelled, false},
	}
	for _, tc := range cases {
		svc, orderRepo, customerRepo := buildOrderSvc()
		c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
		o := seedOrder(orderRepo, c, "ALZ-LAT", tc.from)

		_, err := svc.Update(context.Background(), logistica, o.ID, dto.UpdateOrderRequest{
			State: strPtr(tc.to),
		})
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, domerr.Is(err, domerr.KindState), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateOrder_UnknownState(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0005", model.OrderPending)

	_, err := svc.Update(context.Background(), admin, o.ID, dto.UpdateOrderRequest{
		State: strPtr("perdido"),
	})
	assert.True(t, domerr.Is(err, domerr.KindValidation))
}

func TestAppendEvent_SequenceGrowsWithoutGaps(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0006", model.OrderPending)

	for i := 0; i < 3; i++ {
		ev, err := svc.AppendEvent(context.Background(), logistica, o.ID, dto.AppendEventRequest{
			EventType: model.EventTypes[i],
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, ev.Seq)
	}

	events, err := svc.ListEvents(context.Background(), logistica, o.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Seq)
	}
}

func TestAppendEvent_DoesNotChangeOrderState(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0007", model.OrderPending)

	_, err := svc.AppendEvent(context.Background(), admin, o.ID, dto.AppendEventRequest{
		EventType: "En transito",
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, orderRepo.orders[o.ID].State)
}

func TestAppendEvent_InvalidType(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0008", model.OrderPending)

	_, err := svc.AppendEvent(context.Background(), admin, o.ID, dto.AppendEventRequest{
		EventType: "Teletransportado",
	})
	assert.True(t, domerr.Is(err, domerr.KindValidation))
}

func TestOrderOps_ForbiddenForUnknownRole(t *testing.T) {
	svc, orderRepo, customerRepo := buildOrderSvc()
	c := seedCustomer(customerRepo, "Energia Sur", "sur@example.com", model.CustomerActive)
	o := seedOrder(orderRepo, c, "ALZ-0009", model.OrderPending)

	_, err := svc.GetByID(context.Background(), intruder, o.ID)
	assert.True(t, domerr.Is(err, domerr.KindForbidden))

	_, err = svc.Create(context.Background(), intruder, dto.CreateOrderRequest{
		CustomerID: c.ID.String(), TrackingCode: "ALZ-0010", Description: "x",
	})
	assert.True(t, domerr.Is(err, domerr.KindForbidden))
}
