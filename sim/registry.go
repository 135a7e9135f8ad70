package sim

import (
	"container/heap"
)

// Arrival is one parsed input entry: a request's arrival tick and target track.
type Arrival struct {
	ArrivalTime int64
	Track       int
}

// Registry owns every request of a simulation run and feeds them to the
// engine as their arrival ticks come up.
type Registry struct {
	requests []*Request
	arrivals EventQueue
	active   int // requests not yet complete
}

// NewRegistry builds requests with sequential IDs in input order.
// Input need not be sorted: arrivals are replayed by arrival time, and
// simultaneous arrivals keep their input order.
func NewRegistry(arrivals []Arrival) *Registry {
	reg := &Registry{
		requests: make([]*Request, 0, len(arrivals)),
		arrivals: make(EventQueue, 0, len(arrivals)),
	}
	for i, a := range arrivals {
		req := NewRequest(i, a.ArrivalTime, a.Track)
		reg.requests = append(reg.requests, req)
		heap.Push(&reg.arrivals, sequencedEvent{Event: &ArrivalEvent{time: a.ArrivalTime, Request: req}, seq: i})
	}
	reg.active = len(reg.requests)
	return reg
}

// Requests returns all requests in ID order. Callers must not modify the slice.
func (reg *Registry) Requests() []*Request {
	return reg.requests
}

// Len returns the number of requests.
func (reg *Registry) Len() int {
	return len(reg.requests)
}

// AnyActive reports whether at least one request is created, ready or running.
func (reg *Registry) AnyActive() bool {
	return reg.active > 0
}

// ArrivalsAt pops every arrival event due at or before tick, in arrival then input order.
// Requests due before the first polled tick are delivered on that poll.
func (reg *Registry) ArrivalsAt(tick int64) []*ArrivalEvent {
	var due []*ArrivalEvent
	for reg.arrivals.Len() > 0 && reg.arrivals[0].Timestamp() <= tick {
		ev := heap.Pop(&reg.arrivals).(sequencedEvent)
		due = append(due, ev.Event.(*ArrivalEvent))
	}
	return due
}

// markComplete records that one more request finished.
func (reg *Registry) markComplete() {
	reg.active--
}
