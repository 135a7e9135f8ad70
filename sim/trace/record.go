// Package trace provides event-trace recording for disk scheduling runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import "fmt"

// EventKind identifies a per-request simulation event.
type EventKind string

const (
	// EventAdd marks a request arriving and entering the policy's pending set.
	EventAdd EventKind = "add"
	// EventIssue marks a request being selected for service.
	EventIssue EventKind = "issue"
	// EventFinish marks the head reaching a request's track.
	EventFinish EventKind = "finish"
)

// EventRecord captures a single add, issue or finish event.
type EventRecord struct {
	Clock      int64
	Kind       EventKind
	RequestID  int
	Track      int   // target track of the request
	Head       int   // head position when the event happened
	Turnaround int64 // set on finish events only
}

// String renders the record in the verbose trace layout:
// "tick: id add track", "tick: id issue track head", "tick: id finish turnaround".
func (r EventRecord) String() string {
	switch r.Kind {
	case EventAdd:
		return fmt.Sprintf("%d: %d add %d", r.Clock, r.RequestID, r.Track)
	case EventIssue:
		return fmt.Sprintf("%d: %d issue %d %d", r.Clock, r.RequestID, r.Track, r.Head)
	case EventFinish:
		return fmt.Sprintf("%d: %d finish %d", r.Clock, r.RequestID, r.Turnaround)
	default:
		return fmt.Sprintf("%d: %d %s", r.Clock, r.RequestID, r.Kind)
	}
}

// PendingEntry describes one request waiting in a policy's pending set.
type PendingEntry struct {
	RequestID   int
	ArrivalTime int64
	Track       int
}

// QueueSnapshot captures the pending set right after a dispatch decision.
type QueueSnapshot struct {
	Clock   int64
	Head    int
	Entries []PendingEntry
}
