package observe

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnInsert(Event)   {}
func (NoopObserver) OnRemove(Event)   {}
func (NoopObserver) OnTransfer(Event) {}
func (NoopObserver) OnReject(Event)   {}
