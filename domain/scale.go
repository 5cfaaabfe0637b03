package domain

// ScaleIntent is the caller's requested direction of scaling.
type ScaleIntent string

const (
	ScaleUp   ScaleIntent = "scale_up"
	ScaleDown ScaleIntent = "scale_down"
)

// ScaleOperation names a control-plane operation the policy can perform.
type ScaleOperation string

const (
	OperationStop    ScaleOperation = "STOP"
	OperationSuspend ScaleOperation = "SUSPEND"
	OperationStart   ScaleOperation = "START"
	OperationResume  ScaleOperation = "RESUME"
)

// ScaleConfig selects which operation realizes each intent. It is built once
// per invocation from configuration; decision logic never reads the
// environment directly.
type ScaleConfig struct {
	ScaleDownOperation ScaleOperation
	ScaleUpOperation   ScaleOperation
}

// ScaleRequest is the decoded inbound event. Absent fields fall back to the
// process-wide defaults when the orchestrator resolves them.
type ScaleRequest struct {
	Action    ScaleIntent     `json:"action,omitempty"`
	ProjectID string          `json:"project_id,omitempty"`
	VMLabels  []LabelSelector `json:"vm_labels,omitempty"`
	Zones     []string        `json:"zones,omitempty"`
}

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeError   OutcomeStatus = "error"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// ActionOutcome records the result of attempting (or skipping) an action on
// one instance.
type ActionOutcome struct {
	Instance string        `json:"instance"`
	Zone     string        `json:"zone"`
	Intent   ScaleIntent   `json:"intent"`
	Status   OutcomeStatus `json:"status"`
	Detail   string        `json:"detail,omitempty"`
}

// ScaleResult aggregates one invocation. ProcessedCount counts non-skipped
// outcomes only.
type ScaleResult struct {
	ProcessedCount int             `json:"processed"`
	Outcomes       []ActionOutcome `json:"results"`
	Message        string          `json:"message,omitempty"`
}
