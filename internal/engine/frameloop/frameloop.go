// Package frameloop schedules per-frame callbacks with request/cancel
// semantics. A callback runs once per Step it was requested for and must
// request again to keep running.
package frameloop

// ID identifies a pending request.
type ID uint64

// Callback receives the frame delta in seconds.
type Callback func(dt float64)

type request struct {
	id ID
	cb Callback
}

// Loop is single-threaded; the host calls Step once per display refresh.
type Loop struct {
	next    ID
	pending []request
	// running is the batch of the Step in progress.
	running []request
}

// New returns an empty loop.
func New() *Loop {
	return &Loop{}
}

// Request schedules cb for the next Step.
func (l *Loop) Request(cb Callback) ID {
	l.next++
	l.pending = append(l.pending, request{id: l.next, cb: cb})
	return l.next
}

// Cancel drops a scheduled request, including one later in the batch that
// is currently running. Unknown or already-run IDs are ignored.
func (l *Loop) Cancel(id ID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].cb = nil
			return
		}
	}
}

// Step runs every callback requested before this call. Callbacks requested
// while stepping run on the following Step.
func (l *Loop) Step(dt float64) {
	l.running, l.pending = l.pending, nil
	for i := range l.running {
		cb := l.running[i].cb
		if cb == nil {
			continue
		}
		l.running[i].cb = nil
		cb(dt)
	}
	l.running = nil
}

// Pending returns the number of callbacks scheduled for the next Step.
func (l *Loop) Pending() int {
	return len(l.pending)
}
