package gce

import (
	"context"
	"errors"
	"fmt"

	compute "cloud.google.com/go/compute/apiv1"
	computepb "cloud.google.com/go/compute/apiv1/computepb"
	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/pkg/logger"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Define error types
var (
	ErrClientNotInit  = errors.New("compute client not initialized")
	ErrInstanceAccess = errors.New("failed to access compute instances")
)

// Options contains Compute Engine adapter options
type Options struct {
	// CredentialsFile points at a service account key file. When empty the
	// client falls back to Application Default Credentials.
	CredentialsFile string
}

type gceClient struct {
	instances *compute.InstancesClient
}

// NewComputeAdapter creates a Compute Engine adapter. The returned closer
// releases the underlying REST client.
func NewComputeAdapter(ctx context.Context, options Options) (domain.ComputeAdapter, func() error, error) {
	var opts []option.ClientOption
	if options.CredentialsFile != "" {
		logger.Logger(ctx).Info().Msgf("using compute credentials file %s", options.CredentialsFile)
		opts = append(opts, option.WithCredentialsFile(options.CredentialsFile))
	}

	client, err := compute.NewInstancesRESTClient(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create compute instances client: %w", err)
	}

	adapter := &gceClient{instances: client}
	return adapter, client.Close, nil
}

func (g *gceClient) ListInstances(ctx context.Context, opt *domain.ListInstancesOptions) ([]*domain.Instance, error) {
	if g.instances == nil {
		return nil, ErrClientNotInit
	}

	req := &computepb.ListInstancesRequest{
		Project: opt.ProjectID,
		Zone:    opt.Zone,
	}

	var instances []*domain.Instance
	it := g.instances.List(ctx, req)
	for {
		inst, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInstanceAccess, err)
		}
		instances = append(instances, &domain.Instance{
			Name:   inst.GetName(),
			Labels: inst.GetLabels(),
			State:  domain.InstanceState(inst.GetStatus()),
		})
	}
	return instances, nil
}

func (g *gceClient) StopInstance(ctx context.Context, opt *domain.InstanceActionOptions) (string, error) {
	if g.instances == nil {
		return "", ErrClientNotInit
	}
	op, err := g.instances.Stop(ctx, &computepb.StopInstanceRequest{
		Project:  opt.ProjectID,
		Zone:     opt.Zone,
		Instance: opt.Instance,
	})
	if err != nil {
		return "", err
	}
	logger.Logger(ctx).Info().Msgf("stopping instance %s in zone %s", opt.Instance, opt.Zone)
	return op.Name(), nil
}

func (g *gceClient) StartInstance(ctx context.Context, opt *domain.InstanceActionOptions) (string, error) {
	if g.instances == nil {
		return "", ErrClientNotInit
	}
	op, err := g.instances.Start(ctx, &computepb.StartInstanceRequest{
		Project:  opt.ProjectID,
		Zone:     opt.Zone,
		Instance: opt.Instance,
	})
	if err != nil {
		return "", err
	}
	logger.Logger(ctx).Info().Msgf("starting instance %s in zone %s", opt.Instance, opt.Zone)
	return op.Name(), nil
}

func (g *gceClient) SuspendInstance(ctx context.Context, opt *domain.InstanceActionOptions) (string, error) {
	if g.instances == nil {
		return "", ErrClientNotInit
	}
	op, err := g.instances.Suspend(ctx, &computepb.SuspendInstanceRequest{
		Project:  opt.ProjectID,
		Zone:     opt.Zone,
		Instance: opt.Instance,
	})
	if err != nil {
		return "", err
	}
	logger.Logger(ctx).Info().Msgf("suspending instance %s in zone %s", opt.Instance, opt.Zone)
	return op.Name(), nil
}

func (g *gceClient) ResumeInstance(ctx context.Context, opt *domain.InstanceActionOptions) (string, error) {
	if g.instances == nil {
		return "", ErrClientNotInit
	}
	op, err := g.instances.Resume(ctx, &computepb.ResumeInstanceRequest{
		Project:  opt.ProjectID,
		Zone:     opt.Zone,
		Instance: opt.Instance,
	})
	if err != nil {
		return "", err
	}
	logger.Logger(ctx).Info().Msgf("resuming instance %s in zone %s", opt.Instance, opt.Zone)
	return op.Name(), nil
}
