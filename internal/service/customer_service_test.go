package service_test

import (
	"context"
	"testing"

	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCustomerSvc() (service.CustomerService, *stubCustomerRepo) {
	repo := newStubCustomerRepo()
	return service.NewCustomerService(repo), repo
}

func TestCreateCustomer_DefaultsToActive(t *testing.T) {
	svc, _ := buildCustomerSvc()
	resp, err := svc.Create(context.Background(), logistica, dto.CreateCustomerRequest{
		Name: "Energia Sur", Email: "sur@example.com", Password: "secreto1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CustomerActive, resp.Status)
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	svc, repo := buildCustomerSvc()
	seedCustomer(repo, "Energia Sur", "sur@example.com", model.CustomerActive)

	_, err := svc.Create(context.Background(), admin, dto.CreateCustomerRequest{
		Name: "Otro", Email: "sur@example.com", Password: "secreto1",
	})
	assert.True(t, domerr.Is(err, domerr.KindConflict))
}

func TestListActive_ExcludesInactive(t *testing.T) {
	svc, repo := buildCustomerSvc()
	seedCustomer(repo, "Activo Uno", "uno@example.com", model.CustomerActive)
	seedCustomer(repo, "Baja", "baja@example.com", model.CustomerInactive)

	resp, err := svc.ListActive(context.Background(), logistica)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Activo Uno", resp[0].Name)
}

func TestUpdateCustomer_EmptyPasswordUnchanged(t *testing.T) {
	svc, repo := buildCustomerSvc()
	c := seedCustomer(repo, "Energia Sur", "sur@example.com", model.CustomerActive)
	c.PasswordHash = "hash-original"

	_, err := svc.Update(context.Background(), admin, c.ID, dto.UpdateCustomerRequest{Name: "Energia Sur SAS"})
	require.NoError(t, err)
	assert.Equal(t, "hash-original", repo.customers[c.ID].PasswordHash)
	assert.Equal(t, "Energia Sur SAS", repo.customers[c.ID].Name)
}

func TestUpdateCustomer_InvalidStatus(t *testing.T) {
	svc, repo := buildCustomerSvc()
	c := seedCustomer(repo, "Energia Sur", "sur@example.com", model.CustomerActive)

	_, err := svc.Update(context.Background(), admin, c.ID, dto.UpdateCustomerRequest{Status: "suspendido"})
	assert.True(t, domerr.Is(err, domerr.KindValidation))
}

func TestCustomerOps_ForbiddenForUnknownRole(t *testing.T) {
	svc, _ := buildCustomerSvc()
	_, err := svc.List(context.Background(), intruder, dto.CustomerFilter{})
	assert.True(t, domerr.Is(err, domerr.KindForbidden))
}
