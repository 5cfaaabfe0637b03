package domain

// InstanceState is the power state of a compute instance as reported by the
// control plane.
type InstanceState string

const (
	InstanceRunning      InstanceState = "RUNNING"
	InstanceStopped      InstanceState = "STOPPED"
	InstanceTerminated   InstanceState = "TERMINATED"
	InstanceSuspended    InstanceState = "SUSPENDED"
	InstanceSuspending   InstanceState = "SUSPENDING"
	InstanceStopping     InstanceState = "STOPPING"
	InstanceProvisioning InstanceState = "PROVISIONING"
)

// atRestStates are the states a scale-down leaves alone.
var atRestStates = map[InstanceState]bool{
	InstanceStopped:    true,
	InstanceTerminated: true,
	InstanceSuspended:  true,
}

// Instance is one control-plane listing row: name, label mapping and state.
type Instance struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	State  InstanceState     `json:"state"`
}

// InstanceRef is a snapshot of a discovered instance. It may be stale by the
// time an action executes; the control plane stays authoritative.
type InstanceRef struct {
	Name  string        `json:"name"`
	Zone  string        `json:"zone"`
	State InstanceState `json:"state"`
}
