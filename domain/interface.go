package domain

import "context"

// ListInstancesOptions scopes one control-plane listing call.
type ListInstancesOptions struct {
	ProjectID string
	Zone      string
}

// InstanceActionOptions identifies the instance one operation targets.
type InstanceActionOptions struct {
	ProjectID string
	Zone      string
	Instance  string
}

// ComputeAdapter is the control-plane collaborator. Every method may fail
// with a transport or permission error; action methods return the
// control-plane operation ID.
type ComputeAdapter interface {
	ListInstances(ctx context.Context, opt *ListInstancesOptions) ([]*Instance, error)
	StopInstance(ctx context.Context, opt *InstanceActionOptions) (string, error)
	StartInstance(ctx context.Context, opt *InstanceActionOptions) (string, error)
	SuspendInstance(ctx context.Context, opt *InstanceActionOptions) (string, error)
	ResumeInstance(ctx context.Context, opt *InstanceActionOptions) (string, error)
}

type Service interface {
	DiscoverInstances(ctx context.Context, projectID string, zones []string, selector []LabelSelector) ([]*InstanceRef, error)
	RunScale(ctx context.Context, req *ScaleRequest) (*ScaleResult, error)
}
