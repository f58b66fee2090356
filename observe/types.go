package observe

// Op identifies the registry mutation an Event describes.
type Op string

const (
	// OpInsert is a name being claimed by a handle.
	OpInsert Op = "insert"
	// OpRemove is a name being released.
	OpRemove Op = "remove"
	// OpTransfer is a claimed name being rebound to a different handle in place.
	OpTransfer Op = "transfer"
	// OpReject is a mutation the registry refused (duplicate, empty or missing name).
	OpReject Op = "reject"
)

// Event describes a single registry mutation.
type Event struct {
	Op   Op
	Name string

	// Handle is the handle bound to Name after the event (nil for removals).
	Handle any
	// Previous is the handle bound to Name before the event (nil for inserts).
	Previous any

	// Err is set for OpReject and names the attempted operation's failure.
	Err error
}

// Observer receives registry lifecycle callbacks.
//
// Callbacks run synchronously on the mutating goroutine after the registry
// lock has been released. Implementations must not block.
//
// Because callbacks run outside the lock, observers of a registry mutated
// from several goroutines may see events for the same name out of order
// (e.g. a remove before the insert it undoes). Only events raised by a
// single goroutine are delivered in the order they happened.
type Observer interface {
	OnInsert(ev Event)
	OnRemove(ev Event)
	OnTransfer(ev Event)
	OnReject(ev Event)
}

// Dispatch routes ev to the callback matching ev.Op.
func Dispatch(o Observer, ev Event) {
	if o == nil {
		return
	}
	switch ev.Op {
	case OpInsert:
		o.OnInsert(ev)
	case OpRemove:
		o.OnRemove(ev)
	case OpTransfer:
		o.OnTransfer(ev)
	case OpReject:
		o.OnReject(ev)
	}
}
