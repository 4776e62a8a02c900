package animator

// State is the animator lifecycle phase
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

var stateNames = [...]string{
	StateIdle:    "Idle",
	StateRunning: "Running",
	StateStopped: "Stopped",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// StopReason tells why the animator left Running
type StopReason uint8

const (
	// StopManual is an explicit Stop call
	StopManual StopReason = iota
	// StopCompleted is the automatic stop after the last repeat
	StopCompleted
)

func (r StopReason) String() string {
	if r == StopCompleted {
		return "completed"
	}
	return "manual"
}

// Hooks receive lifecycle notifications synchronously from the mutating call
// Any field may be nil
type Hooks struct {
	// OnSegment fires when a new segment opens
	OnSegment func(seg Segment)

	// OnCycle fires when a cycle completes and the next one begins; repeat is the completed count
	OnCycle func(repeat int)

	// OnStop fires on the transition to Stopped
	OnStop func(reason StopReason)
}

// canTransition encodes the lifecycle: Idle/Stopped -> Running -> Stopped
func canTransition(from, to State) bool {
	switch to {
	case StateRunning:
		return from == StateIdle || from == StateStopped
	case StateStopped:
		return from == StateRunning
	default:
		return false
	}
}
