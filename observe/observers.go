package observe

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnInsert(Event)   {}
func (BaseObserver) OnRemove(Event)   {}
func (BaseObserver) OnTransfer(Event) {}
func (BaseObserver) OnReject(Event)   {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnInsert(ev Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnInsert(ev)
		}
	}
}

func (m MultiObserver) OnRemove(ev Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnRemove(ev)
		}
	}
}

func (m MultiObserver) OnTransfer(ev Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnTransfer(ev)
		}
	}
}

func (m MultiObserver) OnReject(ev Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnReject(ev)
		}
	}
}
