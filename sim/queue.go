// Implements the PendingQueue, which holds requests added to a scheduling policy
// but not yet selected for service. Requests are appended on arrival.

package sim

import "fmt"

// PendingQueue is an insertion-ordered set of requests waiting to be dispatched.
// Policies scan Items() to pick a request and remove it by index, so ties
// between equally good candidates resolve to the earliest-added request.
type PendingQueue struct {
	queue []*Request // insertion order
}

// Enqueue adds a request to the back of the pending queue.
func (pq *PendingQueue) Enqueue(r *Request) {
	if r == nil {
		panic("Enqueue: req must not be nil")
	}
	pq.queue = append(pq.queue, r)
}

// Len returns the number of requests in the queue.
func (pq *PendingQueue) Len() int {
	return len(pq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (pq *PendingQueue) Items() []*Request {
	return pq.queue
}

// RemoveAt removes and returns the request at index i, preserving the order
// of the remaining requests. Panics if i is out of range.
func (pq *PendingQueue) RemoveAt(i int) *Request {
	if i < 0 || i >= len(pq.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range [0, %d)", i, len(pq.queue)))
	}
	req := pq.queue[i]
	copy(pq.queue[i:], pq.queue[i+1:])
	pq.queue[len(pq.queue)-1] = nil
	pq.queue = pq.queue[:len(pq.queue)-1]
	return req
}

// Dequeue removes a request from the front of the queue.
// Returns nil if the queue is empty.
func (pq *PendingQueue) Dequeue() *Request {
	if len(pq.queue) == 0 {
		return nil
	}
	return pq.RemoveAt(0)
}

// Snapshot returns a copy of the queue contents that is safe to retain.
func (pq *PendingQueue) Snapshot() []*Request {
	out := make([]*Request, len(pq.queue))
	copy(out, pq.queue)
	return out
}
