package registry

import (
	"go.uber.org/zap"

	"github.com/aponysus/nameref/internal"
)

// Unnamed is what String reports for a Registrable that holds no name.
const Unnamed = "unnamed_object"

// noCopy lets `go vet` (copylocks) flag copies of a Registrable.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Registrable gives the value embedding it an optional, unique name in a
// Registry. While attached, the registry maps the name to the handle passed
// to Init (normally a pointer to the embedding value).
//
// A Registrable must not be copied: two copies would claim the same name.
// Use InitFrom or TransferFrom to move a claim between values, and Close
// (typically deferred) to release it. A Registrable is not safe for
// concurrent use.
//
// Contract violations panic with a *NameError:
//   - Init or Attach with a name that is already bound
//   - Attach with an empty name, or on a value that is already attached
//   - any method other than Close/Detach/accessors before Init
type Registrable struct {
	noCopy noCopy

	reg  *Registry
	self any
	name string
}

// Init binds the Registrable to self and, if name is non-empty, attaches it
// under name. The registry defaults to Default().
func (n *Registrable) Init(self any, name string, opts ...RegistrableOption) {
	n.bind("init", self, opts)
	if name == "" {
		return
	}
	n.attach(name)
}

// InitFrom binds the Registrable to self and takes over src's registry and
// name claim. The registry entry is rewritten in place; src is left
// unattached.
func (n *Registrable) InitFrom(self any, src *Registrable) {
	var opts []RegistrableOption
	if src != nil {
		opts = append(opts, WithRegistry(src.reg))
	}
	n.bind("init", self, opts)
	n.take(src)
}

// Attach claims name. It panics if the Registrable is already attached, if
// name is empty, or if name is bound to something else.
func (n *Registrable) Attach(name string) {
	n.mustInit("attach", name)
	if n.name != "" {
		n.fail(nameError("attach", name, ErrAlreadyAttached))
	}
	n.attach(name)
}

// Detach releases the current name. It is a no-op when unattached.
func (n *Registrable) Detach() {
	if n.name == "" {
		return
	}
	if err := n.reg.Remove(n.name); err != nil {
		n.fail(err)
	}
	n.name = ""
}

// ResetName releases the current name, if any, and claims name.
func (n *Registrable) ResetName(name string) {
	n.mustInit("reset", name)
	n.Detach()
	n.attach(name)
}

// TransferFrom releases the current name, if any, then takes over src's
// registry and name claim exactly as InitFrom does.
func (n *Registrable) TransferFrom(src *Registrable) {
	if src == n {
		return
	}
	n.mustInit("transfer", "")
	n.Detach()
	if src != nil && src.reg != nil {
		n.reg = src.reg
	}
	n.take(src)
}

// Close detaches the Registrable. It always returns nil and may be called
// more than once.
func (n *Registrable) Close() error {
	n.Detach()
	return nil
}

// Name returns the claimed name, or "" when unattached.
func (n *Registrable) Name() string { return n.name }

// Attached reports whether the Registrable currently holds a name.
func (n *Registrable) Attached() bool { return n.name != "" }

// Handle returns the value published in the registry for this Registrable.
func (n *Registrable) Handle() any { return n.self }

// Registry returns the registry the Registrable attaches to.
func (n *Registrable) Registry() *Registry { return n.reg }

func (n *Registrable) String() string {
	if n.name == "" {
		return Unnamed
	}
	return n.name
}

func (n *Registrable) bind(op string, self any, opts []RegistrableOption) {
	if n.self != nil {
		n.fail(nameError(op, n.name, ErrAlreadyInitialized))
	}
	if internal.IsTypedNil(self) {
		n.fail(nameError(op, "", ErrNilHandle))
	}
	n.self = self
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.reg == nil {
		n.reg = Default()
	}
}

func (n *Registrable) attach(name string) {
	if err := n.reg.Insert(name, n.self); err != nil {
		n.fail(err)
	}
	n.name = name
}

func (n *Registrable) take(src *Registrable) {
	if src == nil || src.name == "" {
		return
	}
	name := src.name
	if err := src.reg.update(name, n.self); err != nil {
		n.fail(err)
	}
	n.name = name
	src.name = ""
}

func (n *Registrable) mustInit(op, name string) {
	if n.self == nil {
		n.fail(nameError(op, name, ErrNotInitialized))
	}
}

func (n *Registrable) fail(err error) {
	n.reg.log().Error("registrable contract violation", zap.Error(err))
	panic(err)
}
