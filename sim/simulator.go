// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disk-sim/sim/trace"
)

// SimConfig groups the knobs of a single simulation run.
type SimConfig struct {
	Policy     string           // canonical policy name, see ValidPolicies
	TraceLevel trace.TraceLevel // "" or "none" disables trace recording
}

// Simulator is the core object that holds simulation time, head position and
// the tick loop. It owns the request registry and the active policy.
type Simulator struct {
	Clock    int64
	Head     int
	Movement int64 // total tracks crossed by the head
	Policy   SchedulingPolicy
	Registry *Registry
	Trace    *trace.SimulationTrace // nil when tracing is disabled

	// OnEvent, if set, receives every add/issue/finish event as it happens.
	OnEvent func(trace.EventRecord)
	// OnQueueDump, if set, receives the pending set after each dispatch decision
	// that starts a tick's dispatch chain.
	OnQueueDump func(trace.QueueSnapshot)

	current *Request // request in service, nil when idle
}

// NewSimulator creates a simulator over the given arrivals. The head starts at track 0.
// Panics if cfg.Policy is not a valid policy name.
func NewSimulator(cfg SimConfig, arrivals []Arrival) *Simulator {
	s := &Simulator{
		Policy:   NewSchedulingPolicy(cfg.Policy),
		Registry: NewRegistry(arrivals),
	}
	if cfg.TraceLevel != "" && cfg.TraceLevel != trace.TraceLevelNone {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	return s
}

// Requests returns the simulated requests in ID order.
func (sim *Simulator) Requests() []*Request {
	return sim.Registry.Requests()
}

// Run advances the clock until every request is complete and returns the aggregated metrics.
func (sim *Simulator) Run() *Metrics {
	logrus.Infof("[tick %07d] Starting %s simulation with %d requests", sim.Clock, sim.Policy.Name(), sim.Registry.Len())
	for sim.Registry.AnyActive() {
		sim.Step()
	}
	elapsed := max(sim.Clock-1, 0)
	logrus.Infof("[tick %07d] Simulation ended, head moved %d tracks", elapsed, sim.Movement)
	return NewMetrics(sim.Requests(), elapsed, sim.Movement)
}

// Step simulates a single tick: arrivals, one track of head movement,
// completion, and dispatch when idle.
func (sim *Simulator) Step() {
	for _, ev := range sim.Registry.ArrivalsAt(sim.Clock) {
		ev.Execute(sim)
	}

	if sim.current != nil {
		sim.moveHead()
		if sim.Head == sim.current.Track {
			sim.finish(sim.current)
			sim.current = nil
		}
	}

	if sim.current == nil {
		sim.dispatch()
	}

	sim.Clock++
}

// admit moves a newly arrived request into the policy's pending set.
func (sim *Simulator) admit(req *Request) {
	req.State = StateReady
	sim.Policy.Add(req)
	sim.emit(trace.EventRecord{Clock: sim.Clock, Kind: trace.EventAdd, RequestID: req.ID, Track: req.Track, Head: sim.Head})
}

// moveHead steps the head one track towards the request in service.
func (sim *Simulator) moveHead() {
	switch {
	case sim.Head < sim.current.Track:
		sim.Head++
		sim.Movement++
	case sim.Head > sim.current.Track:
		sim.Head--
		sim.Movement++
	}
	logrus.Tracef("[tick %07d] head at %d, serving request %d (track %d)", sim.Clock, sim.Head, sim.current.ID, sim.current.Track)
}

// dispatch asks the policy for the next request. Requests on the head's
// current track complete immediately and the policy is asked again, until it
// is idle or returns a request that needs head movement.
func (sim *Simulator) dispatch() {
	req := sim.Policy.Next(sim.Head)
	if req == nil {
		return
	}
	sim.dumpQueue()
	for {
		sim.issue(req)
		if req.Track != sim.Head {
			sim.current = req
			return
		}
		sim.finish(req)
		if req = sim.Policy.Next(sim.Head); req == nil {
			return
		}
	}
}

func (sim *Simulator) issue(req *Request) {
	req.start(sim.Clock)
	sim.emit(trace.EventRecord{Clock: sim.Clock, Kind: trace.EventIssue, RequestID: req.ID, Track: req.Track, Head: sim.Head})
}

func (sim *Simulator) finish(req *Request) {
	req.complete(sim.Clock)
	sim.Registry.markComplete()
	sim.emit(trace.EventRecord{Clock: sim.Clock, Kind: trace.EventFinish, RequestID: req.ID, Track: req.Track, Head: sim.Head, Turnaround: req.TurnaroundTime})
}

func (sim *Simulator) emit(record trace.EventRecord) {
	logrus.Debugf("[tick %07d] %s", sim.Clock, record)
	if sim.Trace != nil {
		sim.Trace.RecordEvent(record)
	}
	if sim.OnEvent != nil {
		sim.OnEvent(record)
	}
}

// dumpQueue publishes the policy's pending set when anyone is listening.
func (sim *Simulator) dumpQueue() {
	if sim.OnQueueDump == nil && (sim.Trace == nil || sim.Trace.Config.Level != trace.TraceLevelFull) {
		return
	}
	pending := sim.Policy.Pending()
	snapshot := trace.QueueSnapshot{Clock: sim.Clock, Head: sim.Head, Entries: make([]trace.PendingEntry, len(pending))}
	for i, r := range pending {
		snapshot.Entries[i] = trace.PendingEntry{RequestID: r.ID, ArrivalTime: r.ArrivalTime, Track: r.Track}
	}
	if sim.Trace != nil {
		sim.Trace.RecordQueue(snapshot)
	}
	if sim.OnQueueDump != nil {
		sim.OnQueueDump(snapshot)
	}
}
