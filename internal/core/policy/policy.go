// Package policy decides whether an actor may perform an operation on a
// resource. It is a pure decision function: no storage access, no side
// effects, deterministic over its inputs.
package policy

import "github.com/nomadnav/travel-api/internal/core/domain"

// Operation is the action an actor attempts on a resource.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Resource is the kind of record the operation targets.
type Resource string

const (
	ResourcePrice   Resource = "price"
	ResourceCountry Resource = "country"
)

// Authorize applies the access rules:
//
//	price    read           anyone
//	price    create         any authenticated actor
//	price    update/delete  reporter or admin
//	country  read           anyone
//	country  create/update/delete  admin only
//
// ownerID is the price record's reporter and is only consulted for price
// update/delete. A missing actor on a protected operation yields
// ErrUnauthenticated; an authenticated but unpermitted actor yields
// ErrForbidden. The two are never conflated.
func Authorize(actor *domain.Actor, op Operation, res Resource, ownerID string) error {
	if op == OpRead {
		return nil
	}
	if actor == nil || actor.ID == "" {
		return domain.ErrUnauthenticated
	}

	switch res {
	case ResourcePrice:
		if op == OpCreate {
			return nil
		}
		if actor.ID == ownerID || actor.IsAdmin() {
			return nil
		}
		return domain.ErrForbidden
	case ResourceCountry:
		if actor.IsAdmin() {
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrForbidden
}
