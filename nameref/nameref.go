// Package nameref is a thin facade over the process-wide default registry.
package nameref

import "github.com/aponysus/nameref/registry"

// Registrable is embedded by types that want to be found by name.
type Registrable = registry.Registrable

// Find returns the value bound to name in the default registry, if any.
func Find(name string) (any, bool) { return registry.Default().Find(name) }

// Get returns the value bound to name in the default registry and panics if
// name is not bound.
func Get(name string) any { return registry.Default().Get(name) }

// Contains reports whether name is bound in the default registry.
func Contains(name string) bool { return registry.Default().Contains(name) }

// Names returns the names bound in the default registry, sorted.
func Names() []string { return registry.Default().Names() }

