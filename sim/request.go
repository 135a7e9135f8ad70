// Defines the Request struct that models a single disk I/O request in the simulation.
// Tracks arrival time, target track, lifecycle state, and start/end timestamps.

package sim

import (
	"fmt"
)

// RequestState represents the lifecycle state of a request.
type RequestState string

const (
	StateCreated  RequestState = "created"
	StateReady    RequestState = "ready"
	StateRunning  RequestState = "running"
	StateComplete RequestState = "complete"
)

// Request models a single I/O request's lifecycle in the simulation.
type Request struct {
	ID          int   // Sequential identifier, assigned in input order starting at 0
	ArrivalTime int64 // Tick at which the request becomes eligible for scheduling
	Track       int   // Target track (non-negative)

	State RequestState // created, ready, running, complete

	StartTime      int64 // Tick the request was first selected for service
	EndTime        int64 // Tick the head reached Track
	WaitTime       int64 // StartTime - ArrivalTime
	TurnaroundTime int64 // EndTime - ArrivalTime

	started bool
}

// NewRequest creates a Request in the created state.
func NewRequest(id int, arrivalTime int64, track int) *Request {
	return &Request{
		ID:          id,
		ArrivalTime: arrivalTime,
		Track:       track,
		State:       StateCreated,
	}
}

// Started reports whether StartTime and WaitTime are set.
func (req *Request) Started() bool {
	return req.started
}

// Completed reports whether EndTime and TurnaroundTime are set.
func (req *Request) Completed() bool {
	return req.State == StateComplete
}

// start records the dispatch of the request at the given tick.
func (req *Request) start(now int64) {
	req.State = StateRunning
	req.StartTime = now
	req.WaitTime = now - req.ArrivalTime
	req.started = true
}

// complete records that the head reached the request's track at the given tick.
func (req *Request) complete(now int64) {
	req.State = StateComplete
	req.EndTime = now
	req.TurnaroundTime = now - req.ArrivalTime
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, State: %s, Track: %d, ArrivalTime: %d)", req.ID, req.State, req.Track, req.ArrivalTime)
}
