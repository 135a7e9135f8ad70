// Package sim provides the tick-driven disk scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - request.go: Request lifecycle (created → ready → running → complete)
//   - scheduler.go: the SchedulingPolicy interface, FIFO and SSTF
//   - scheduler_look.go: direction-aware policies (LOOK, CLOOK, FLOOK)
//   - simulator.go: the tick loop that moves the head and dispatches requests
//
// # Architecture
//
// The engine owns every piece of mutable state: the head position, the clock,
// the request registry and the active policy. Policies only see the head
// position as an argument to Next and hold request handles while pending.
//
// Sub-packages:
//   - sim/trace/: per-event trace records (add / issue / finish, queue dumps)
//   - sim/workload/: request file parsing and synthetic request generation
//
// # Key Interfaces
//
//   - SchedulingPolicy: add a request, select the next one given the head
//     position, expose the pending set for diagnostics
package sim
