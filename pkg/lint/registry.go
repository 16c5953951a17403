package lint

import (
	"fmt"
	"sync"
)

// Registry holds rule descriptors in registration order.
//
// Registration order is load-bearing: it fixes the order analyzers are
// finalized in and therefore the order violations appear in a FileResult.
type Registry struct {
	mu      sync.RWMutex
	ordered []*Descriptor
	byID    map[string]*Descriptor
	byAlias map[string]*Descriptor
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]*Descriptor),
		byAlias: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor to the registry. Registering a duplicate ID
// or alias panics; rule identities are program constants and a collision
// is a programming error.
func (r *Registry) Register(d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; ok {
		panic(fmt.Sprintf("lint: duplicate rule ID %q", d.ID))
	}
	if d.Alias != "" {
		if _, ok := r.byAlias[d.Alias]; ok {
			panic(fmt.Sprintf("lint: duplicate rule alias %q", d.Alias))
		}
		r.byAlias[d.Alias] = d
	}
	r.ordered = append(r.ordered, d)
	r.byID[d.ID] = d
}

// Resolve returns the descriptor for a rule ID or alias.
func (r *Registry) Resolve(key string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byID[key]; ok {
		return d, true
	}
	if d, ok := r.byAlias[key]; ok {
		return d, true
	}
	return nil, false
}

// Descriptors returns all registered descriptors in registration order.
// The returned slice is a copy; callers may reorder it freely.
func (r *Registry) Descriptors() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
