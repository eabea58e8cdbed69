// Package authz is the single capability table consulted by every service
// before any read or mutation. Role checks are never re-implemented per
// screen or per handler; transport middleware may reject early, but the
// gate here is authoritative.
package authz

import (
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"

	"github.com/google/uuid"
)

// Roles. Any other role value resolves to zero capabilities.
const (
	RoleAdmin     = "admin"
	RoleLogistica = "logistica"
)

// Caller is the per-call identity context. It is resolved by the transport
// layer (JWT middleware) and passed explicitly into every service operation;
// services never read ambient session state.
type Caller struct {
	ID   uuid.UUID
	Role string
}

type Entity string

const (
	EntityUser       Entity = "user"
	EntityCustomer   Entity = "customer"
	EntityOrder      Entity = "order"
	EntityRoute      Entity = "route"
	EntityCarrier    Entity = "carrier"
	EntityDocument   Entity = "document"
	EntityAssignment Entity = "assignment"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// FieldRouteCost is role-restricted: visible and settable only by
// admin/logistica, stripped from every representation returned to anyone else.
const FieldRouteCost = "cost"

var adminOnly = []string{RoleAdmin}
var staff = []string{RoleAdmin, RoleLogistica}

// capabilities maps (entity, action) to the roles allowed to perform it.
// Absent pairs are denied for everyone. Orders have no delete entry:
// cancellation is a state, not a deletion.
var capabilities = map[Entity]map[Action][]string{
	EntityUser: {
		ActionCreate: adminOnly,
		ActionRead:   adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	EntityCustomer: {
		ActionCreate: staff,
		ActionRead:   staff,
		ActionUpdate: staff,
		ActionDelete: staff,
	},
	EntityOrder: {
		ActionCreate: staff,
		ActionRead:   staff,
		ActionUpdate: staff,
	},
	EntityRoute: {
		ActionCreate: staff,
		ActionRead:   staff,
		ActionUpdate: staff,
	},
	EntityCarrier: {
		ActionCreate: staff,
		ActionRead:   staff,
		ActionUpdate: staff,
		ActionDelete: adminOnly,
	},
	EntityDocument: {
		ActionCreate: adminOnly,
		ActionRead:   staff,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	EntityAssignment: {
		ActionCreate: staff,
		ActionRead:   staff,
		ActionDelete: adminOnly,
	},
}

var fieldCapabilities = map[Entity]map[string][]string{
	EntityRoute: {
		FieldRouteCost: staff,
	},
}

// Can reports whether role may perform action on entity. Unknown roles,
// entities and actions all resolve to false, never to an error.
func Can(role string, e Entity, a Action) bool {
	actions, ok := capabilities[e]
	if !ok {
		return false
	}
	return contains(actions[a], role)
}

// Require returns a forbidden error carrying the refused entity/action when
// the caller's role lacks the capability.
func Require(c Caller, e Entity, a Action) error {
	if !Can(c.Role, e, a) {
		return domerr.Forbidden(string(e), string(a), "")
	}
	return nil
}

// CanViewField reports whether role may see a role-restricted field.
func CanViewField(role string, e Entity, field string) bool {
	fields, ok := fieldCapabilities[e]
	if !ok {
		return false
	}
	return contains(fields[field], role)
}

// RequireField returns a forbidden error naming the refused field.
func RequireField(c Caller, e Entity, field string) error {
	if !CanViewField(c.Role, e, field) {
		return domerr.Forbidden(string(e), "", field)
	}
	return nil
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
