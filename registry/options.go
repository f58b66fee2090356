package registry

import (
	"slices"

	"go.uber.org/zap"

	"github.com/aponysus/nameref/observe"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for rejected operations and invariant
// violations. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver sets the observer notified of every registry mutation.
// Passing it more than once fans events out to all given observers.
func WithObserver(o observe.Observer) Option {
	return func(r *Registry) {
		if o == nil {
			return
		}
		switch cur := r.observer.(type) {
		case observe.NoopObserver:
			r.observer = o
		case observe.MultiObserver:
			r.observer = observe.MultiObserver{Observers: append(slices.Clone(cur.Observers), o)}
		default:
			r.observer = observe.MultiObserver{Observers: []observe.Observer{cur, o}}
		}
	}
}

// RegistrableOption configures a Registrable at Init time.
type RegistrableOption func(*Registrable)

// WithRegistry binds the Registrable to reg instead of the process-wide default.
func WithRegistry(reg *Registry) RegistrableOption {
	return func(n *Registrable) {
		if reg != nil {
			n.reg = reg
		}
	}
}
