package taxonomy

// ProcessStep is one stage of the fixed six-stage project pipeline.
type ProcessStep string

const (
	StepVisit    ProcessStep = "visit"
	StepEstimate ProcessStep = "estimate"
	StepAssign   ProcessStep = "assign"
	StepOrder    ProcessStep = "order"
	StepInstall  ProcessStep = "install"
	StepSettle   ProcessStep = "settle"
)

// steps holds the canonical pipeline order.
var steps = []ProcessStep{
	StepVisit,
	StepEstimate,
	StepAssign,
	StepOrder,
	StepInstall,
	StepSettle,
}

// Steps returns the six pipeline stages in order.
func Steps() []ProcessStep {
	out := make([]ProcessStep, len(steps))
	copy(out, steps)
	return out
}

// StepIndex returns the 0-based position of a stage, -1 for unknown keys.
func StepIndex(s ProcessStep) int {
	for i, k := range steps {
		if k == s {
			return i
		}
	}
	return -1
}

func (s ProcessStep) Valid() bool {
	return StepIndex(s) >= 0
}

func (s ProcessStep) Label() string {
	switch s {
	case StepVisit:
		return "현장방문"
	case StepEstimate:
		return "견적"
	case StepAssign:
		return "배정"
	case StepOrder:
		return "발주"
	case StepInstall:
		return "시공"
	case StepSettle:
		return "정산"
	}
	return string(s)
}

// Order returns the 1-based display number of the stage, 0 for unknown keys.
func (s ProcessStep) Order() int {
	return StepIndex(s) + 1
}

// StepState describes a stage relative to a project's current stage.
type StepState string

const (
	StateCompleted StepState = "completed"
	StateCurrent   StepState = "current"
	StateFuture    StepState = "future"
)

// StateOf classifies stage s against the project's current stage.
// An unknown current stage yields index -1, so every stage reads as
// future. That degradation is deliberate and must not become an error.
func StateOf(s, current ProcessStep) StepState {
	cur := StepIndex(current)
	idx := StepIndex(s)
	switch {
	case idx < cur:
		return StateCompleted
	case idx == cur:
		return StateCurrent
	default:
		return StateFuture
	}
}
