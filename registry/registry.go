package registry

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/aponysus/nameref/internal"
	"github.com/aponysus/nameref/observe"
)

// Registry is a thread-safe name → handle map.
//
// A handle is an opaque, non-owning reference to the registered value; the
// registry never inspects it. Each name maps to exactly one handle.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any

	logger   *zap.Logger
	observer observe.Observer
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:  make(map[string]any),
		logger:   zap.NewNop(),
		observer: observe.NoopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Insert binds name to handle.
// It returns an error if the name is empty, the handle is nil/typed-nil, or the
// name is already bound.
func (r *Registry) Insert(name string, handle any) error {
	if r == nil {
		return nameError("insert", name, ErrNilRegistry)
	}
	if name == "" {
		return r.reject("insert", name, ErrEmptyName)
	}
	if internal.IsTypedNil(handle) {
		return r.reject("insert", name, ErrNilHandle)
	}

	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(map[string]any)
	}
	if _, dup := r.entries[name]; dup {
		r.mu.Unlock()
		return r.reject("insert", name, ErrDuplicateName)
	}
	r.entries[name] = handle
	r.mu.Unlock()

	r.obs().OnInsert(observe.Event{Op: observe.OpInsert, Name: name, Handle: handle})
	return nil
}

// MustInsert binds name to handle and panics on error.
func (r *Registry) MustInsert(name string, handle any) {
	if err := r.Insert(name, handle); err != nil {
		panic(err)
	}
}

// Remove unbinds name. It returns an error if name is not bound.
func (r *Registry) Remove(name string) error {
	if r == nil {
		return nameError("remove", name, ErrNilRegistry)
	}

	r.mu.Lock()
	prev, ok := r.entries[name]
	if !ok {
		r.mu.Unlock()
		return r.reject("remove", name, ErrNameNotFound)
	}
	delete(r.entries, name)
	r.mu.Unlock()

	r.obs().OnRemove(observe.Event{Op: observe.OpRemove, Name: name, Previous: prev})
	return nil
}

// update rebinds an existing name to handle in a single critical section, so
// readers never observe name as missing. It never creates or deletes a key.
func (r *Registry) update(name string, handle any) error {
	if r == nil {
		return nameError("update", name, ErrNilRegistry)
	}
	if internal.IsTypedNil(handle) {
		return r.reject("update", name, ErrNilHandle)
	}

	r.mu.Lock()
	prev, ok := r.entries[name]
	if !ok {
		r.mu.Unlock()
		return r.reject("update", name, ErrNameNotFound)
	}
	r.entries[name] = handle
	r.mu.Unlock()

	r.obs().OnTransfer(observe.Event{Op: observe.OpTransfer, Name: name, Handle: handle, Previous: prev})
	return nil
}

// Find returns the handle bound to name, if any.
func (r *Registry) Find(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	h, ok := r.entries[name]
	r.mu.RUnlock()
	return h, ok
}

// Get returns the handle bound to name.
//
// Get is for call sites that already know the name is bound; a missing name is
// a programming error and Get panics with a *NameError wrapping
// ErrNameNotFound. Use Find when absence is an expected outcome.
func (r *Registry) Get(name string) any {
	h, ok := r.Find(name)
	if !ok {
		err := nameError("get", name, ErrNameNotFound)
		r.log().Error("lookup of unbound name", zap.String("name", name))
		panic(err)
	}
	return h
}

// Contains reports whether name is bound.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Find(name)
	return ok
}

// Len returns the number of bound names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the bound names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

func (r *Registry) reject(op, name string, cause error) error {
	err := nameError(op, name, cause)
	r.log().Warn("registry operation rejected", zap.String("op", op), zap.String("name", name), zap.Error(cause))
	r.obs().OnReject(observe.Event{Op: observe.OpReject, Name: name, Err: err})
	return err
}

func (r *Registry) log() *zap.Logger {
	if r == nil || r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

func (r *Registry) obs() observe.Observer {
	if r.observer == nil {
		return observe.NoopObserver{}
	}
	return r.observer
}
