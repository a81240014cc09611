package policy

import (
	"errors"
	"testing"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

var (
	anon  *domain.Actor
	alice = &domain.Actor{ID: "user_alice", Role: domain.RoleUser}
	bob   = &domain.Actor{ID: "user_bob", Role: domain.RoleUser}
	admin = &domain.Actor{ID: "user_admin", Role: domain.RoleAdmin}
)

func TestAuthorize_RuleTable(t *testing.T) {
	cases := []struct {
		name    string
		actor   *domain.Actor
		op      Operation
		res     Resource
		ownerID string
		want    error
	}{
		{"price read anonymous", anon, OpRead, ResourcePrice, "", nil},
		{"price read authenticated", alice, OpRead, ResourcePrice, "", nil},
		{"price create anonymous", anon, OpCreate, ResourcePrice, "", domain.ErrUnauthenticated},
		{"price create authenticated", alice, OpCreate, ResourcePrice, "", nil},
		{"price update by owner", alice, OpUpdate, ResourcePrice, alice.ID, nil},
		{"price update by other user", bob, OpUpdate, ResourcePrice, alice.ID, domain.ErrForbidden},
		{"price update by admin", admin, OpUpdate, ResourcePrice, alice.ID, nil},
		{"price update anonymous", anon, OpUpdate, ResourcePrice, alice.ID, domain.ErrUnauthenticated},
		{"price delete by owner", alice, OpDelete, ResourcePrice, alice.ID, nil},
		{"price delete by other user", bob, OpDelete, ResourcePrice, alice.ID, domain.ErrForbidden},
		{"price delete by admin", admin, OpDelete, ResourcePrice, alice.ID, nil},
		{"country read anonymous", anon, OpRead, ResourceCountry, "", nil},
		{"country create anonymous", anon, OpCreate, ResourceCountry, "", domain.ErrUnauthenticated},
		{"country create by user", alice, OpCreate, ResourceCountry, "", domain.ErrForbidden},
		{"country create by admin", admin, OpCreate, ResourceCountry, "", nil},
		{"country update by user", alice, OpUpdate, ResourceCountry, "", domain.ErrForbidden},
		{"country update by admin", admin, OpUpdate, ResourceCountry, "", nil},
		{"country delete by user", alice, OpDelete, ResourceCountry, "", domain.ErrForbidden},
		{"country delete by admin", admin, OpDelete, ResourceCountry, "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Authorize(tc.actor, tc.op, tc.res, tc.ownerID)
			if !errors.Is(got, tc.want) && (got != nil || tc.want != nil) {
				t.Fatalf("Authorize() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAuthorize_EmptyActorIDIsAnonymous(t *testing.T) {
	// An Actor with no ID proves nothing; treat it as unauthenticated.
	err := Authorize(&domain.Actor{}, OpCreate, ResourcePrice, "")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_UnauthenticatedNeverForbidden(t *testing.T) {
	// The two failure kinds must stay distinct: an anonymous caller on a
	// protected op is 401 material, never 403.
	err := Authorize(nil, OpDelete, ResourceCountry, "")
	if errors.Is(err, domain.ErrForbidden) {
		t.Fatal("anonymous caller must not yield ErrForbidden")
	}
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
