package service_test

import (
	"context"
	"testing"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/config"
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 24}
	return service.NewAuthService(repo, cfg), repo
}

func seedUser(r *stubUserRepo, email, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{ID: uuid.New(), Name: "Staff", Email: email, PasswordHash: string(hash), Role: role}
	r.users[u.ID] = u
	return u
}

func TestLogin_OK(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "ana@alz.com", "secreto1", authz.RoleLogistica)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@alz.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, authz.RoleLogistica, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "ana@alz.com", "secreto1", authz.RoleLogistica)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@alz.com", Password: "otra"})
	assert.Error(t, err)
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "ana@alz.com", "secreto1", authz.RoleAdmin)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@alz.com", Password: "secreto1"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestCreateUser_AdminOnly(t *testing.T) {
	svc, _ := buildAuthSvc()
	req := dto.CreateUserRequest{Name: "Nuevo", Email: "nuevo@alz.com", Role: authz.RoleLogistica, Password: "secreto1"}

	_, err := svc.CreateUser(context.Background(), logistica, req)
	assert.True(t, domerr.Is(err, domerr.KindForbidden))

	resp, err := svc.CreateUser(context.Background(), admin, req)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleLogistica, resp.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "ana@alz.com", "secreto1", authz.RoleLogistica)

	_, err := svc.CreateUser(context.Background(), admin, dto.CreateUserRequest{
		Name: "Otra Ana", Email: "ana@alz.com", Role: authz.RoleLogistica, Password: "secreto1",
	})
	assert.True(t, domerr.Is(err, domerr.KindConflict))
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.CreateUser(context.Background(), admin, dto.CreateUserRequest{
		Name: "X", Email: "x@alz.com", Role: "gerente", Password: "secreto1",
	})
	assert.True(t, domerr.Is(err, domerr.KindValidation))
}

func TestDeleteUser_SelfDeleteDenied(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUser(repo, "root@alz.com", "secreto1", authz.RoleAdmin)
	caller := authz.Caller{ID: u.ID, Role: authz.RoleAdmin}

	err := svc.DeleteUser(context.Background(), caller, u.ID)
	assert.True(t, domerr.Is(err, domerr.KindForbidden))
	_, stillThere := repo.users[u.ID]
	assert.True(t, stillThere)
}

func TestDeleteUser_OtherAccount(t *testing.T) {
	svc, repo := buildAuthSvc()
	victim := seedUser(repo, "viejo@alz.com", "secreto1", authz.RoleLogistica)

	err := svc.DeleteUser(context.Background(), admin, victim.ID)
	require.NoError(t, err)
	_, exists := repo.users[victim.ID]
	assert.False(t, exists)
}

func TestListUsers_ForbiddenForLogistica(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.ListUsers(context.Background(), logistica)
	assert.True(t, domerr.Is(err, domerr.KindForbidden))
}
