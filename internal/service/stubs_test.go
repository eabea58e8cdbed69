package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. Uniqueness rules that production delegates to
// DB indexes are mirrored here with gorm.ErrDuplicatedKey so the services'
// conflict mapping is exercised.

var (
	admin     = authz.Caller{ID: uuid.New(), Role: authz.RoleAdmin}
	logistica = authz.Caller{ID: uuid.New(), Role: authz.RoleLogistica}
	intruder  = authz.Caller{ID: uuid.New(), Role: "viewer"}
)

// ── customers ────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = model.CustomerActive
	}
	for _, existing := range r.customers {
		if strings.EqualFold(existing.Email, c.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	c.CreatedAt = time.Now()
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context, filter dto.CustomerFilter) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) ListActive(_ context.Context) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		if c.Status == model.CustomerActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

func seedCustomer(r *stubCustomerRepo, name, email, status string) *model.Customer {
	c := &model.Customer{ID: uuid.New(), Name: name, Email: email, Status: status}
	r.customers[c.ID] = c
	return c
}

// ── orders ───────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
	events map[uuid.UUID][]model.OrderEvent
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: make(map[uuid.UUID]*model.Order),
		events: make(map[uuid.UUID][]model.OrderEvent),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	for _, existing := range r.orders {
		if existing.TrackingCode == o.TrackingCode {
			return gorm.ErrDuplicatedKey
		}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range r.orders {
		if filter.State != "" && o.State != filter.State {
			continue
		}
		if filter.CustomerID != "" && o.CustomerID.String() != filter.CustomerID {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) AppendEvent(_ context.Context, orderID uuid.UUID, eventType, note string) (*model.OrderEvent, error) {
	if _, ok := r.orders[orderID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ev := model.OrderEvent{
		ID:        uuid.New(),
		OrderID:   orderID,
		Seq:       len(r.events[orderID]) + 1,
		EventType: eventType,
		Note:      note,
		Date:      time.Now().UTC(),
	}
	r.events[orderID] = append(r.events[orderID], ev)
	return &ev, nil
}

func (r *stubOrderRepo) ListEvents(_ context.Context, orderID uuid.UUID) ([]model.OrderEvent, error) {
	return r.events[orderID], nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

func seedOrder(r *stubOrderRepo, customer *model.Customer, tracking, state string) *model.Order {
	o := &model.Order{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		Customer:     customer,
		TrackingCode: tracking,
		Description:  "paneles solares",
		State:        state,
	}
	r.orders[o.ID] = o
	return o
}

// ── carriers ─────────────────────────────────────────────────────────────────

type stubCarrierRepo struct {
	carriers map[uuid.UUID]*model.Carrier
}

func newStubCarrierRepo() *stubCarrierRepo {
	return &stubCarrierRepo{carriers: make(map[uuid.UUID]*model.Carrier)}
}

func (r *stubCarrierRepo) Create(_ context.Context, c *model.Carrier) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.carriers[c.ID] = c
	return nil
}

func (r *stubCarrierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Carrier, error) {
	c, ok := r.carriers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCarrierRepo) List(_ context.Context, filter dto.CarrierFilter) ([]model.Carrier, error) {
	var out []model.Carrier
	for _, c := range r.carriers {
		if filter.State != "" && c.State != filter.State {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCarrierRepo) Update(_ context.Context, c *model.Carrier) error {
	r.carriers[c.ID] = c
	return nil
}

func (r *stubCarrierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.carriers, id)
	return nil
}

var _ repository.CarrierRepository = (*stubCarrierRepo)(nil)

func seedCarrier(r *stubCarrierRepo, name, state string) *model.Carrier {
	c := &model.Carrier{ID: uuid.New(), Name: name, Contact: "555-0100", State: state}
	r.carriers[c.ID] = c
	return c
}

// ── routes ───────────────────────────────────────────────────────────────────

type stubRouteRepo struct {
	routes    map[uuid.UUID]*model.Route
	orderRepo *stubOrderRepo
}

func newStubRouteRepo(orderRepo *stubOrderRepo) *stubRouteRepo {
	return &stubRouteRepo{routes: make(map[uuid.UUID]*model.Route), orderRepo: orderRepo}
}

func (r *stubRouteRepo) Create(_ context.Context, rt *model.Route) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	rt.CreatedAt = time.Now()
	r.routes[rt.ID] = rt
	return nil
}

// FindByID mirrors the production preload of Order.
func (r *stubRouteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Route, error) {
	rt, ok := r.routes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if o, ok := r.orderRepo.orders[rt.OrderID]; ok {
		rt.Order = o
	}
	return rt, nil
}

func (r *stubRouteRepo) List(_ context.Context, _ dto.RouteFilter) ([]model.Route, int64, error) {
	var out []model.Route
	for _, rt := range r.routes {
		cp := *rt
		if o, ok := r.orderRepo.orders[rt.OrderID]; ok {
			cp.Order = o
		}
		out = append(out, cp)
	}
	return out, int64(len(out)), nil
}

func (r *stubRouteRepo) Update(_ context.Context, rt *model.Route) error {
	if _, ok := r.routes[rt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.routes[rt.ID] = rt
	return nil
}

var _ repository.RouteRepository = (*stubRouteRepo)(nil)

// ── users ────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── documents ────────────────────────────────────────────────────────────────

type stubDocumentRepo struct {
	docs        map[uuid.UUID]*model.Document
	assignments map[uuid.UUID]*model.DocumentAssignment
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{
		docs:        make(map[uuid.UUID]*model.Document),
		assignments: make(map[uuid.UUID]*model.DocumentAssignment),
	}
}

func (r *stubDocumentRepo) Create(_ context.Context, d *model.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now()
	r.docs[d.ID] = d
	return nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDocumentRepo) List(_ context.Context, filter dto.DocumentFilter) ([]model.Document, error) {
	var out []model.Document
	for _, d := range r.docs {
		if filter.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDocumentRepo) Update(_ context.Context, d *model.Document) error {
	r.docs[d.ID] = d
	return nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

func (r *stubDocumentRepo) CreateAssignment(_ context.Context, a *model.DocumentAssignment) error {
	for _, existing := range r.assignments {
		if existing.DocumentID == a.DocumentID && existing.CustomerID == a.CustomerID {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.AssignedAt = time.Now()
	r.assignments[a.ID] = a
	return nil
}

func (r *stubDocumentRepo) FindAssignmentByID(_ context.Context, id uuid.UUID) (*model.DocumentAssignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubDocumentRepo) ListAssignmentsByDocument(_ context.Context, documentID uuid.UUID) ([]model.DocumentAssignment, error) {
	var out []model.DocumentAssignment
	for _, a := range r.assignments {
		if a.DocumentID == documentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) DeleteAssignment(_ context.Context, id uuid.UUID) error {
	delete(r.assignments, id)
	return nil
}

var _ repository.DocumentRepository = (*stubDocumentRepo)(nil)