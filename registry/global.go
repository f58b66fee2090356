package registry

import "sync"

var (
	defaultReg  *Registry
	defaultOnce sync.Once
)

// Default returns the shared, lazy-initialized process-wide registry.
// It uses NewRegistry() if SetDefault has not been called.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// SetDefault configures the process-wide registry.
// It must be called before Default() is used (e.g. at startup).
// If called after initialization, it logs a warning to r's logger and does nothing.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	installed := false
	defaultOnce.Do(func() {
		defaultReg = r
		installed = true
	})
	if !installed {
		r.log().Warn("SetDefault called after default registry already initialized; ignoring")
	}
}
