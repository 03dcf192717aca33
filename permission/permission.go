// Package permission keeps the permission nodes plugins declare and decides
// whether a player holds one.
//
// A player holds a node when one of their grants matches it. Grants may end
// in "*" to cover every node below a prefix and may start with "-" to take a
// node away again; a negated grant always wins. Without a matching grant the
// node's registered default applies, and nodes nobody registered belong to
// operators.
package permission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
)

var ErrAlreadyRegistered = errors.New("permission already registered")

const grantsTimeout = 5 * time.Second

// GrantStore supplies the nodes granted to a player.
type GrantStore interface {
	Grants(ctx context.Context, player uuid.UUID) ([]string, error)
}

// Subject is the player a permission is checked for.
type Subject struct {
	ID       uuid.UUID
	Operator bool
}

// Registry implements host.PermissionRegistry.
type Registry struct {
	store GrantStore

	mu       sync.RWMutex
	defaults map[string]host.PermissionDefault
	grants   map[uuid.UUID][]string
}

// NewRegistry returns a registry reading grants from store. A nil store
// means nobody has explicit grants.
func NewRegistry(store GrantStore) *Registry {
	return &Registry{
		store:    store,
		defaults: make(map[string]host.PermissionDefault),
		grants:   make(map[uuid.UUID][]string),
	}
}

// Register declares node with its default.
func (r *Registry) Register(node string, def host.PermissionDefault) error {
	if node == "" {
		return errors.New("empty permission node")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defaults[node]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, node)
	}
	r.defaults[node] = def

	log.WithFields(log.Fields{
		"component": "permission",
		"node":      node,
		"default":   def.String(),
	}).Debug("registered permission")
	return nil
}

// Default returns the default registered for node.
func (r *Registry) Default(node string) (host.PermissionDefault, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defaults[node]
	return def, ok
}

// Defaults returns a copy of every registered node.
func (r *Registry) Defaults() map[string]host.PermissionDefault {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defaults := make(map[string]host.PermissionDefault, len(r.defaults))
	for node, def := range r.defaults {
		defaults[node] = def
	}
	return defaults
}

// Invalidate forgets the cached grants of player.
func (r *Registry) Invalidate(player uuid.UUID) {
	r.mu.Lock()
	delete(r.grants, player)
	r.mu.Unlock()
}

// Has reports whether subject holds node.
func (r *Registry) Has(subject Subject, node string) bool {
	if held, matched := match(r.grantsOf(subject.ID), node); matched {
		return held
	}

	def, ok := r.Default(node)
	if !ok {
		return subject.Operator
	}

	switch def {
	case host.PermissionTrue:
		return true
	case host.PermissionOp:
		return subject.Operator
	case host.PermissionNotOp:
		return !subject.Operator
	default:
		return false
	}
}

func (r *Registry) grantsOf(player uuid.UUID) []string {
	r.mu.RLock()
	grants, ok := r.grants[player]
	r.mu.RUnlock()
	if ok || r.store == nil {
		return grants
	}

	ctx, cancel := context.WithTimeout(context.Background(), grantsTimeout)
	defer cancel()

	grants, err := r.store.Grants(ctx, player)
	if err != nil {
		// not cached, so the next check retries
		log.WithError(err).WithField("player", player).Warn("loading grants failed")
		return nil
	}

	r.mu.Lock()
	r.grants[player] = grants
	r.mu.Unlock()
	return grants
}

// match checks node against grants. matched is false when no grant mentions
// the node at all.
func match(grants []string, node string) (held, matched bool) {
	for _, g := range grants {
		negated := strings.HasPrefix(g, "-")
		if negated {
			g = g[1:]
		}
		if !covers(g, node) {
			continue
		}
		if negated {
			return false, true
		}
		held, matched = true, true
	}
	return held, matched
}

func covers(grant, node string) bool {
	if grant == node {
		return true
	}
	if strings.HasSuffix(grant, "*") {
		return strings.HasPrefix(node, grant[:len(grant)-1])
	}
	return false
}
