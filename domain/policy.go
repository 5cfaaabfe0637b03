package domain

import "fmt"

// Decision is the per-instance verdict: skip, or perform one control-plane
// operation. Err is set for an unrecognized intent, which must surface
// rather than silently skip or act.
type Decision struct {
	Skip      bool
	Operation ScaleOperation
	Err       error
}

// Decide maps (intent, current state) to an action. Skipping instances that
// already reached the desired state is what makes repeated invocations
// against a stabilized fleet converge to zero actions.
func Decide(intent ScaleIntent, state InstanceState, cfg ScaleConfig) Decision {
	switch intent {
	case ScaleDown:
		if atRestStates[state] {
			return Decision{Skip: true}
		}
		return Decision{Operation: cfg.ScaleDownOperation}
	case ScaleUp:
		if state == InstanceRunning {
			return Decision{Skip: true}
		}
		return Decision{Operation: cfg.ScaleUpOperation}
	default:
		return Decision{Err: fmt.Errorf("unknown action: %s", intent)}
	}
}
