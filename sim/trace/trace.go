package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures add, issue and finish events.
	TraceLevelEvents TraceLevel = "events"
	// TraceLevelFull additionally captures a queue snapshot at every dispatch.
	TraceLevelFull TraceLevel = "full"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	TraceLevelFull:   true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects event records during a simulation run.
type SimulationTrace struct {
	Config     TraceConfig
	Events     []EventRecord
	QueueDumps []QueueSnapshot
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Events:     make([]EventRecord, 0),
		QueueDumps: make([]QueueSnapshot, 0),
	}
}

// RecordEvent appends an event record. No-op when tracing is disabled.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	if st.Config.Level == TraceLevelNone || st.Config.Level == "" {
		return
	}
	st.Events = append(st.Events, record)
}

// RecordQueue appends a queue snapshot. Only kept at TraceLevelFull.
func (st *SimulationTrace) RecordQueue(snapshot QueueSnapshot) {
	if st.Config.Level != TraceLevelFull {
		return
	}
	st.QueueDumps = append(st.QueueDumps, snapshot)
}
