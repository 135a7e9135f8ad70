package sim

import (
	"fmt"
	"strings"
)

// SchedulingPolicy selects which pending request the disk head services next.
// Implementations hold request handles only while they are pending; the
// simulator owns the requests themselves.
type SchedulingPolicy interface {
	// Add inserts a newly arrived request into the pending set.
	Add(req *Request)
	// Next removes and returns the request to service next given the current
	// head position, or nil when nothing is pending.
	Next(head int) *Request
	// Pending returns a copy of the pending set for diagnostic display.
	Pending() []*Request
	// Name returns the canonical policy name.
	Name() string
}

// Canonical policy names.
const (
	PolicyFIFO  = "fifo"
	PolicySSTF  = "sstf"
	PolicyLOOK  = "look"
	PolicyCLOOK = "clook"
	PolicyFLOOK = "flook"
)

// ValidPolicies is the set of recognized canonical policy names.
var ValidPolicies = map[string]bool{PolicyFIFO: true, PolicySSTF: true, PolicyLOOK: true, PolicyCLOOK: true, PolicyFLOOK: true}

// PolicyNames lists the canonical policy names in presentation order.
var PolicyNames = []string{PolicyFIFO, PolicySSTF, PolicyLOOK, PolicyCLOOK, PolicyFLOOK}

// policyLetters maps the historical single-letter selectors to canonical names.
var policyLetters = map[string]string{
	"i": PolicyFIFO,
	"j": PolicySSTF,
	"s": PolicyLOOK,
	"c": PolicyCLOOK,
	"f": PolicyFLOOK,
}

// IsValidPolicy returns true if name is a recognized canonical policy name.
func IsValidPolicy(name string) bool { return ValidPolicies[name] }

// ParsePolicy resolves a selector token to a canonical policy name.
// Accepts canonical names (case-insensitive) and the letters i, j, s, c, f.
// Unknown tokens are an error; there is no default policy.
func ParsePolicy(token string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if name, ok := policyLetters[t]; ok {
		return name, nil
	}
	if IsValidPolicy(t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown scheduling policy %q (valid: %s, or i/j/s/c/f)", token, strings.Join(PolicyNames, ", "))
}

// NewSchedulingPolicy creates a SchedulingPolicy by canonical name.
// Panics on unrecognized names; validate with IsValidPolicy or ParsePolicy first.
func NewSchedulingPolicy(name string) SchedulingPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
	switch name {
	case PolicyFIFO:
		return &FIFOScheduler{}
	case PolicySSTF:
		return &SSTFScheduler{}
	case PolicyLOOK:
		return NewLOOKScheduler()
	case PolicyCLOOK:
		return &CLOOKScheduler{}
	case PolicyFLOOK:
		return NewFLOOKScheduler()
	default:
		panic(fmt.Sprintf("unhandled scheduling policy %q", name))
	}
}

// SeekDistance returns the number of tracks the head must cross to reach track.
func SeekDistance(head, track int) int {
	if head > track {
		return head - track
	}
	return track - head
}

// nearest returns the index of the request with the smallest seek distance among
// those accepted by keep (nil accepts all), or -1 if none qualifies.
// Ties go to the lowest index.
func nearest(reqs []*Request, head int, keep func(*Request) bool) int {
	best, bestSeek := -1, 0
	for i, r := range reqs {
		if keep != nil && !keep(r) {
			continue
		}
		seek := SeekDistance(head, r.Track)
		if best == -1 || seek < bestSeek {
			best, bestSeek = i, seek
		}
	}
	return best
}

// FIFOScheduler services requests strictly in the order they were added.
type FIFOScheduler struct {
	pending PendingQueue
}

func (f *FIFOScheduler) Add(req *Request) { f.pending.Enqueue(req) }

func (f *FIFOScheduler) Next(_ int) *Request { return f.pending.Dequeue() }

func (f *FIFOScheduler) Pending() []*Request { return f.pending.Snapshot() }

func (f *FIFOScheduler) Name() string { return PolicyFIFO }

// SSTFScheduler services the request closest to the head, regardless of direction.
// Warning: SSTF can starve requests far from a busy region of the disk.
type SSTFScheduler struct {
	pending PendingQueue
}

func (s *SSTFScheduler) Add(req *Request) { s.pending.Enqueue(req) }

func (s *SSTFScheduler) Next(head int) *Request {
	idx := nearest(s.pending.Items(), head, nil)
	if idx < 0 {
		return nil
	}
	return s.pending.RemoveAt(idx)
}

func (s *SSTFScheduler) Pending() []*Request { return s.pending.Snapshot() }

func (s *SSTFScheduler) Name() string { return PolicySSTF }
