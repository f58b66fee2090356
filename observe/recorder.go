package observe

import "sync"

// Recorder is an Observer that keeps every event it sees, in order.
//
// It is intended for tests and debugging; it grows without bound.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnInsert(ev Event)   { r.record(ev) }
func (r *Recorder) OnRemove(ev Event)   { r.record(ev) }
func (r *Recorder) OnTransfer(ev Event) { r.record(ev) }
func (r *Recorder) OnReject(ev Event)   { r.record(ev) }

func (r *Recorder) record(ev Event) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
// It is thread-safe.
func (r *Recorder) Events() []Event {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Ops returns the Op of every recorded event, in order.
func (r *Recorder) Ops() []Op {
	events := r.Events()
	ops := make([]Op, len(events))
	for i, ev := range events {
		ops[i] = ev.Op
	}
	return ops
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
