package client

import "sync"

// Tracker counts in-flight requests. Loading is true while at least one
// request is running, so overlapping calls never clear each other's state.
type Tracker struct {
	// notify serializes transitions with their callbacks so observers see
	// them in order. Observers must not call Begin or a done func.
	notify    sync.Mutex
	mu        sync.Mutex
	inFlight  int
	observers []func(loading bool)
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin marks a request as started. The returned func marks it finished;
// calling it more than once has no further effect.
func (t *Tracker) Begin() (done func()) {
	t.step(1)
	var once sync.Once
	return func() {
		once.Do(func() { t.step(-1) })
	}
}

func (t *Tracker) step(delta int) {
	t.notify.Lock()
	defer t.notify.Unlock()

	t.mu.Lock()
	before := t.inFlight > 0
	t.inFlight += delta
	after := t.inFlight > 0
	observers := t.observers
	t.mu.Unlock()

	if before == after {
		return
	}
	for _, fn := range observers {
		fn(after)
	}
}

// Loading reports whether any request is in flight.
func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight > 0
}

// InFlight returns the number of running requests.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}

// Subscribe registers fn for idle/loading transitions.
func (t *Tracker) Subscribe(fn func(loading bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}
