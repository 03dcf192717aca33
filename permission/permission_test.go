package permission

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"pvdiscs.dev/host"
)

type grantMap map[uuid.UUID][]string

func (g grantMap) Grants(_ context.Context, player uuid.UUID) ([]string, error) {
	return g[player], nil
}

type countingStore struct {
	grants []string
	calls  int
	err    error
}

func (c *countingStore) Grants(context.Context, uuid.UUID) ([]string, error) {
	c.calls++
	return c.grants, c.err
}

func TestRegisterOnce(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register("pv.addon.discs.burn", host.PermissionOp); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.Register("pv.addon.discs.burn", host.PermissionTrue)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second register: got %v, want ErrAlreadyRegistered", err)
	}
	if def, _ := r.Default("pv.addon.discs.burn"); def != host.PermissionOp {
		t.Errorf("default changed by failed register: %v", def)
	}
	if err := r.Register("", host.PermissionTrue); err == nil {
		t.Errorf("empty node should be rejected")
	}
	if len(r.Defaults()) != 1 {
		t.Errorf("defaults: got %v", r.Defaults())
	}
}

func TestHas(t *testing.T) {
	agon, huin, griefy, newbie := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	r := NewRegistry(grantMap{
		agon:   {"pv.addon.discs.burn", "server.status"},
		huin:   {"pv.addon.discs.*"},
		griefy: {"-pv.addon.discs.*", "pv.addon.discs.search"},
	})
	r.Register("pv.addon.discs.burn", host.PermissionOp)
	r.Register("pv.addon.discs.erase", host.PermissionOp)
	r.Register("pv.addon.discs.search", host.PermissionTrue)
	r.Register("pv.addon.discs.newcomer", host.PermissionNotOp)
	r.Register("pv.addon.discs.nobody", host.PermissionFalse)

	testCases := []struct {
		name     string
		subject  Subject
		node     string
		expected bool
	}{
		{"explicit grant", Subject{ID: agon}, "pv.addon.discs.burn", true},
		{"op default without grant", Subject{ID: agon}, "pv.addon.discs.erase", false},
		{"op default for operator", Subject{ID: newbie, Operator: true}, "pv.addon.discs.erase", true},
		{"true default", Subject{ID: newbie}, "pv.addon.discs.search", true},
		{"not_op default", Subject{ID: newbie}, "pv.addon.discs.newcomer", true},
		{"not_op default for operator", Subject{ID: newbie, Operator: true}, "pv.addon.discs.newcomer", false},
		{"false default", Subject{ID: newbie, Operator: true}, "pv.addon.discs.nobody", false},
		{"wildcard overrides false default", Subject{ID: huin}, "pv.addon.discs.nobody", true},
		{"wildcard", Subject{ID: huin}, "pv.addon.discs.erase", true},
		{"negation wins over grant", Subject{ID: griefy}, "pv.addon.discs.search", false},
		{"negation wins over default", Subject{ID: griefy}, "pv.addon.discs.newcomer", false},
		{"unregistered for player", Subject{ID: newbie}, "server.stop", false},
		{"unregistered for operator", Subject{ID: newbie, Operator: true}, "server.stop", true},
		{"unregistered but granted", Subject{ID: agon}, "server.status", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Has(tc.subject, tc.node); got != tc.expected {
				t.Errorf("Has(%s): got %v, want %v", tc.node, got, tc.expected)
			}
		})
	}
}

func TestGrantsAreCached(t *testing.T) {
	store := &countingStore{grants: []string{"a.b"}}
	r := NewRegistry(store)
	player := Subject{ID: uuid.New()}

	for i := 0; i < 3; i++ {
		if !r.Has(player, "a.b") {
			t.Fatalf("expected grant to hold")
		}
	}
	if store.calls != 1 {
		t.Errorf("store calls: got %d, want 1", store.calls)
	}

	store.grants = nil
	r.Invalidate(player.ID)
	if r.Has(player, "a.b") {
		t.Errorf("revoked grant still held after invalidate")
	}
	if store.calls != 2 {
		t.Errorf("store calls after invalidate: got %d, want 2", store.calls)
	}
}

func TestGrantErrorsAreRetried(t *testing.T) {
	store := &countingStore{err: errors.New("db down")}
	r := NewRegistry(store)
	player := Subject{ID: uuid.New()}

	if r.Has(player, "a.b") {
		t.Errorf("failed lookup should not grant anything")
	}
	store.err = nil
	store.grants = []string{"a.b"}
	if !r.Has(player, "a.b") {
		t.Errorf("grant not picked up once the store recovers")
	}
}
