package sim

// sweep holds the direction state shared by LOOK and FLOOK.
// The head starts scanning towards higher track numbers.
type sweep struct {
	ascending bool
}

// ahead reports whether track lies on the current scan side of head.
// A request on the head's own track is on both sides.
func (sw *sweep) ahead(head, track int) bool {
	if sw.ascending {
		return track >= head
	}
	return track <= head
}

// selectFrom picks the nearest request in the current direction, reversing once
// when nothing lies ahead. Returns the chosen index or -1 for an empty queue.
func (sw *sweep) selectFrom(pq *PendingQueue, head int) int {
	if pq.Len() == 0 {
		return -1
	}
	inDirection := func(r *Request) bool { return sw.ahead(head, r.Track) }
	if idx := nearest(pq.Items(), head, inDirection); idx >= 0 {
		return idx
	}
	sw.ascending = !sw.ascending
	return nearest(pq.Items(), head, inDirection)
}

// LOOKScheduler sweeps the head back and forth, servicing the nearest request in
// the current direction and reversing only when nothing lies ahead.
type LOOKScheduler struct {
	pending PendingQueue
	sweep
}

// NewLOOKScheduler returns a LOOK scheduler scanning upward.
func NewLOOKScheduler() *LOOKScheduler {
	return &LOOKScheduler{sweep: sweep{ascending: true}}
}

func (l *LOOKScheduler) Add(req *Request) { l.pending.Enqueue(req) }

func (l *LOOKScheduler) Next(head int) *Request {
	idx := l.selectFrom(&l.pending, head)
	if idx < 0 {
		return nil
	}
	return l.pending.RemoveAt(idx)
}

func (l *LOOKScheduler) Pending() []*Request { return l.pending.Snapshot() }

func (l *LOOKScheduler) Name() string { return PolicyLOOK }

// Ascending reports the current scan direction.
func (l *LOOKScheduler) Ascending() bool { return l.ascending }

// CLOOKScheduler only scans upward. When nothing lies at or above the head it
// wraps to the pending request with the lowest track number.
type CLOOKScheduler struct {
	pending PendingQueue
}

func (c *CLOOKScheduler) Add(req *Request) { c.pending.Enqueue(req) }

func (c *CLOOKScheduler) Next(head int) *Request {
	items := c.pending.Items()
	if len(items) == 0 {
		return nil
	}
	idx := nearest(items, head, func(r *Request) bool { return r.Track >= head })
	if idx < 0 {
		// Wrap: lowest track number wins, not the shortest seek from the head.
		idx = nearest(items, 0, nil)
	}
	return c.pending.RemoveAt(idx)
}

func (c *CLOOKScheduler) Pending() []*Request { return c.pending.Snapshot() }

func (c *CLOOKScheduler) Name() string { return PolicyCLOOK }

// FLOOKScheduler runs LOOK over a frozen generation of requests. Arrivals go to
// the incoming generation, which only becomes active once the active one drains,
// so a stream of nearby arrivals cannot postpone older requests indefinitely.
type FLOOKScheduler struct {
	active   PendingQueue
	incoming PendingQueue
	sweep
}

// NewFLOOKScheduler returns an FLOOK scheduler scanning upward.
func NewFLOOKScheduler() *FLOOKScheduler {
	return &FLOOKScheduler{sweep: sweep{ascending: true}}
}

func (f *FLOOKScheduler) Add(req *Request) { f.incoming.Enqueue(req) }

func (f *FLOOKScheduler) Next(head int) *Request {
	if f.active.Len() == 0 {
		f.active, f.incoming = f.incoming, PendingQueue{}
	}
	idx := f.selectFrom(&f.active, head)
	if idx < 0 {
		return nil
	}
	return f.active.RemoveAt(idx)
}

// Pending returns the generation currently being drained.
func (f *FLOOKScheduler) Pending() []*Request { return f.active.Snapshot() }

// Incoming returns the generation accumulating new arrivals.
func (f *FLOOKScheduler) Incoming() []*Request { return f.incoming.Snapshot() }

func (f *FLOOKScheduler) Name() string { return PolicyFLOOK }

// Ascending reports the current scan direction.
func (f *FLOOKScheduler) Ascending() bool { return f.ascending }
